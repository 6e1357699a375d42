package stderr

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const bufferSize = 100

// forward logs every non-blank line read from r and offers it to lines,
// dropping it when the channel is full. lines is closed when r ends.
func forward(r io.Reader, lines chan<- string, log zerolog.Logger) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Warn().Str("source", "stderr").Msg(line)
		select {
		case lines <- line:
		default:
			// Channel full, drop message to avoid blocking
		}
	}
}
