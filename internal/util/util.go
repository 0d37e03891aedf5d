package util

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone database for distroless images

	"github.com/pkg/errors"
)

// SKU prefixes.
const (
	SKUPrefixInventory = "INV"
	SKUPrefixSupplier  = "SUP"
)

const (
	publishDateLayout = "2006-01-02"
	publishTimeLayout = "15:04:05"
)

// GenerateSKU returns prefix + unix millis + a random number in [1000, 9999].
func GenerateSKU(prefix string, now time.Time) string {
	return prefix + strconv.FormatInt(now.UnixMilli(), 10) + strconv.Itoa(1000+rand.IntN(9000)) //nolint:gosec
}

// PublishStamp formats now as YYYY-MM-DD and HH:mm:ss in loc.
func PublishStamp(now time.Time, loc *time.Location) (date, clock string) {
	if loc != nil {
		now = now.In(loc)
	}

	return now.Format(publishDateLayout), now.Format(publishTimeLayout)
}

// LoadLocation resolves an IANA zone name, falling back to UTC for an empty name.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load time zone %q", name)
	}

	return loc, nil
}

// RandomFilename returns 16 random hex characters followed by the lower-cased extension of original.
func RandomFilename(original string) (string, error) {
	buf := make([]byte, 8)
	if _, err := crand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf) + strings.ToLower(filepath.Ext(original)), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
