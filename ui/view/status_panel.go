package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusPanel shows overlay uptime and the live marker count.
type StatusPanel interface {
	SetUptime(current, total time.Duration)
	SetMarkerCount(n int)
}

type statusPanel struct {
	uptimeLbl *LabelWidget
	totalLbl  *LabelWidget
	markerLbl *LabelWidget
}

// NewStatusPanel creates the readout labels on the given grid row,
// starting at startCol.
func NewStatusPanel(row, startCol int) StatusPanel {
	s := &statusPanel{
		uptimeLbl: Label(Width(14)),
		totalLbl:  Label(Width(14)),
		markerLbl: Label(Width(14)),
	}
	Grid(s.uptimeLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	Grid(s.markerLbl, Row(row), Column(startCol+2), Sticky("w"), Padx("0.2m"))
	s.uptimeLbl.Configure(Txt("Shown: 00:00"))
	s.totalLbl.Configure(Txt("Total: 00:00"))
	s.markerLbl.Configure(Txt("Markers: 0"))
	return s
}

// SetUptime updates the current stretch and total shown durations.
func (s *statusPanel) SetUptime(current, total time.Duration) {
	if s == nil {
		return
	}
	if s.uptimeLbl != nil {
		s.uptimeLbl.Configure(Txt("Shown: " + clockFormat(current)))
	}
	if s.totalLbl != nil {
		s.totalLbl.Configure(Txt("Total: " + clockFormat(total)))
	}
}

// SetMarkerCount updates the marker count display.
func (s *statusPanel) SetMarkerCount(n int) {
	if s == nil || s.markerLbl == nil {
		return
	}
	s.markerLbl.Configure(Txt(fmt.Sprintf("Markers: %d", n)))
}

func clockFormat(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
