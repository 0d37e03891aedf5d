package impl

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

var (
	dateStamp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeStamp = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.TimeZone = "Asia/Colombo"

	return cfg
}

func newActor(userType entity.UserType) entity.AuthenticatedContext {
	return entity.AuthenticatedContext{
		UserID: uuid.New(),
		Email:  string(userType) + "@example.com",
		Type:   userType,
	}
}

func newPicture(name string) *usecase.Upload {
	return &usecase.Upload{
		Filename:    name,
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("\x89PNG"),
	}
}

func ptr[T any](v T) *T {
	return &v
}
