package util

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// ChecksumSHA256 hashes everything read from r and reports the byte count.
func ChecksumSHA256(r io.Reader) (string, int64, error) {
	sha256Hash := sha256.New()

	n, err := io.Copy(sha256Hash, r)
	if err != nil {
		return "", n, errors.Wrap(err, "failed to calculate checksum")
	}

	return fmt.Sprintf("%x", sha256Hash.Sum(nil)), n, nil
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

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
