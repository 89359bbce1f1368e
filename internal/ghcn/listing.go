package ghcn

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"golang.org/x/net/html"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/logger"
)

// ErrArchiveNotFound is returned when the daily-archive directory listing
// has no file for the requested station.
var ErrArchiveNotFound = errors.New("station archive not found in directory listing")

// findStationArchiveName scans an HTML directory listing for the link to
// the station's daily archive (either <id>.dly or <id>.dly.gz).
func findStationArchiveName(stationID string, listing io.Reader) (string, error) {
	pattern := fmt.Sprintf(`^%s\.dly(\.gz)?$`, regexp.QuoteMeta(stationID))

	z := html.NewTokenizer(listing)

	var isLink bool

	for {
		tokenType := z.Next()
		tokenData := z.Token().Data

		switch tokenType {
		case html.ErrorToken:
			return "", ErrArchiveNotFound
		case html.StartTagToken:
			if tokenData == "a" {
				isLink = true
			}
		case html.TextToken:
			if isLink {
				isArchive, err := regexp.MatchString(pattern, tokenData)
				if err != nil {
					logger.Error(fmt.Errorf("failed to check regexp in archive name: %v", err))
					continue
				}
				if isArchive {
					return tokenData, nil
				}

				isLink = false
			}
		default:
			continue
		}
	}
}
