package util

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestGenerateSKU(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1718000000123)
	pattern := regexp.MustCompile(`^INV1718000000123([0-9]{4})$`)

	for range 200 {
		sku := GenerateSKU(SKUPrefixInventory, now)
		m := pattern.FindStringSubmatch(sku)
		if m == nil {
			t.Fatalf("GenerateSKU = %s, does not match %s", sku, pattern)
		}
		n, _ := strconv.Atoi(m[1])
		if n < 1000 || n > 9999 {
			t.Fatalf("random suffix %d out of range", n)
		}
	}

	if got := GenerateSKU(SKUPrefixSupplier, now); !strings.HasPrefix(got, "SUP1718000000123") {
		t.Fatalf("GenerateSKU(SUP) = %s", got)
	}
}

func TestPublishStamp(t *testing.T) {
	t.Parallel()

	colombo, err := LoadLocation("Asia/Colombo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// 2024-03-01 20:00:00 UTC is 2024-03-02 01:30:00 in Colombo (+05:30).
	now := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	date, clock := PublishStamp(now, colombo)
	if date != "2024-03-02" || clock != "01:30:00" {
		t.Fatalf("PublishStamp = %s %s", date, clock)
	}

	date, clock = PublishStamp(now, nil)
	if date != "2024-03-01" || clock != "20:00:00" {
		t.Fatalf("PublishStamp(nil) = %s %s", date, clock)
	}
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	if loc, err := LoadLocation(""); err != nil || loc != time.UTC {
		t.Fatalf("LoadLocation(\"\") = %v, %v", loc, err)
	}
	if _, err := LoadLocation("Mars/Olympus"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestRandomFilename(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[0-9a-f]{16}\.png$`)
	seen := map[string]bool{}
	for range 50 {
		name, err := RandomFilename("Photo.PNG")
		if err != nil {
			t.Fatalf("RandomFilename: %v", err)
		}
		if !pattern.MatchString(name) {
			t.Fatalf("RandomFilename = %s", name)
		}
		if seen[name] {
			t.Fatalf("duplicate name %s", name)
		}
		seen[name] = true
	}

	name, err := RandomFilename("noext")
	if err != nil || len(name) != 16 {
		t.Fatalf("RandomFilename(noext) = %q, %v", name, err)
	}
}
