package explorer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"fexplore/pkg/types"
)

const (
	// DefaultTimeFormat is YYYY-MM-DD HH:MM:SS
	DefaultTimeFormat = "2006-01-02 15:04:05"

	rowFormat = "%-12s%-8s%-8s%-10s%-20s %s"
)

// Formatter renders status snapshots as fixed-width, left-aligned rows
type Formatter struct {
	TimeFormat string
	HumanSizes bool
}

// NewFormatter returns a formatter with the default time layout and sizes
// in bytes.
func NewFormatter() Formatter {
	return Formatter{TimeFormat: DefaultTimeFormat}
}

// Header returns the column titles
func (f Formatter) Header() string {
	return fmt.Sprintf(rowFormat, "PERMISSIONS", "OWNER", "GROUP", "SIZE", "MODIFIED", "NAME")
}

// Rule returns the separator printed under the header
func (f Formatter) Rule() string {
	return strings.Repeat("-", 80)
}

// Row renders one snapshot. The modification time is shown in local time.
func (f Formatter) Row(st *types.FileStatus) string {
	layout := f.TimeFormat
	if layout == "" {
		layout = DefaultTimeFormat
	}

	size := strconv.FormatInt(st.Size, 10)
	if f.HumanSizes && st.Size >= 0 {
		size = humanize.Bytes(uint64(st.Size))
	}

	return fmt.Sprintf(rowFormat,
		st.Permissions(),
		st.Owner,
		st.Group,
		size,
		st.ModTime.Local().Format(layout),
		st.Name)
}
