package fortune

import (
	"fmt"
	"strings"
	"time"

	"github.com/skeeto/showerthoughts/internal/domain"
)

// DefaultWidth is the classic fortune column width.
const DefaultWidth = 78

// Delimiter is the line separating entries in a fortune cookie file.
const Delimiter = "%"

// U+2015 HORIZONTAL BAR, the dash traditionally used for attributions.
const attributionDash = "―"

// Render produces one entry for a candidate: the wrapped title, a
// tab-indented attribution line with the author and the submission month,
// and the % delimiter line. Pure; the caller owns the output sink.
func Render(c domain.Candidate, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder
	for _, line := range Wrap(c.Title, width) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	when := time.Unix(c.Timestamp, 0).UTC().Format("Jan 2006")
	fmt.Fprintf(&b, "\t%s%s, %s\n", attributionDash, c.Author, when)

	b.WriteString(Delimiter)
	b.WriteByte('\n')
	return b.String()
}
