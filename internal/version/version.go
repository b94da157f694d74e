package version

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Заполняются через -ldflags "-X .../internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// День первого релиза мода. BuildID - число дней от него.
var buildEpoch = time.Date(
	2026, time.March, 1,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	Calculated bool
	Error      string
}

// BuildIDFor считает номер сборки для даты YYYY-MM-DD
func BuildIDFor(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	// Using hours avoids DST issues; epoch and build date are both UTC.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info returns structured version information.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    coalesce(BuildCommit, "unknown"),
		Branch:    coalesce(BuildBranch, "unknown"),
	}

	id, err := BuildIDFor(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// Fields - то же самое в виде полей для логгера
func (i VersionInfo) Fields() logrus.Fields {
	f := logrus.Fields{"commit": i.Commit, "branch": i.Branch}
	if i.Calculated {
		f["build"] = i.BuildID
		f["date"] = i.BuildDate
	} else {
		f["build"] = "unknown"
	}
	return f
}

// String returns a human-readable build string.
func (i VersionInfo) String() string {
	if !i.Calculated {
		return fmt.Sprintf("Build unknown (%s)", i.Error)
	}
	return fmt.Sprintf("Build %d (%s) commit[%s] branch[%s]", i.BuildID, i.BuildDate, i.Commit, i.Branch)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
