package allocation

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	dayColWidth   = 8
	roundColWidth = 12
)

// TableRow holds the per-round counts of one day.
type TableRow struct {
	Day    int
	Counts []int
}

// Table is the day by round grid of placed item counts.
type Table struct {
	Header []string
	Rows   []TableRow
}

// SummaryTable builds the count grid of p. Rounds never reached on the last
// day are reported as zero.
func SummaryTable(p *Plan) Table {
	t := Table{Header: make([]string, 0, p.RoundsPerDay+1)}
	t.Header = append(t.Header, "Day")
	for r := 1; r <= p.RoundsPerDay; r++ {
		t.Header = append(t.Header, fmt.Sprintf("Round %d", r))
	}
	for d, counts := range p.SlotCounts {
		t.Rows = append(t.Rows, TableRow{Day: d + 1, Counts: append([]int(nil), counts...)})
	}
	return t
}

// Total sums every cell.
func (t Table) Total() int {
	n := 0
	for _, row := range t.Rows {
		for _, c := range row.Counts {
			n += c
		}
	}
	return n
}

// String renders the fixed-width text grid.
func (t Table) String() string {
	var b strings.Builder
	rule := strings.Repeat("-", 5+roundColWidth*(len(t.Header)-1))
	b.WriteString(rule + "\n")
	for i, h := range t.Header {
		if i == 0 {
			fmt.Fprintf(&b, "%-*s", dayColWidth, h)
			continue
		}
		fmt.Fprintf(&b, "%-*s", roundColWidth, h)
	}
	b.WriteString("\n" + rule + "\n")
	for _, row := range t.Rows {
		fmt.Fprintf(&b, "%-*d", dayColWidth, row.Day)
		for _, c := range row.Counts {
			fmt.Fprintf(&b, "%-*d", roundColWidth, c)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Utilization returns the fill ratio of every round that received at least
// one item, in fill order.
func Utilization(p *Plan) []float64 {
	if p.CapacityPerRound == 0 {
		return nil
	}
	var out []float64
	for _, counts := range p.SlotCounts {
		for _, c := range counts {
			if c > 0 {
				out = append(out, float64(c)/float64(p.CapacityPerRound))
			}
		}
	}
	return out
}

// UtilizationStats summarises Utilization.
type UtilizationStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Rounds int
}

// Stats computes mean, standard deviation and minimum of the round fill
// ratios. All fields are zero for an empty plan.
func Stats(p *Plan) UtilizationStats {
	u := Utilization(p)
	if len(u) == 0 {
		return UtilizationStats{}
	}
	s := UtilizationStats{Rounds: len(u), Min: floats.Min(u)}
	if len(u) == 1 {
		s.Mean = u[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(u, nil)
	if math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}
	return s
}

// Report renders the distribution summary shown before export.
func Report(p *Plan) string {
	var b strings.Builder
	b.WriteString("Exam Distribution Summary\n")
	b.WriteString("=========================\n")
	fmt.Fprintf(&b, "Total Examinees       : %d\n", p.TotalItems)
	fmt.Fprintf(&b, "Number of Centers     : %d\n", len(p.Centers))
	fmt.Fprintf(&b, "Number of Labs        : %d\n", len(p.Units))
	fmt.Fprintf(&b, "Rounds per Day        : %d\n", p.RoundsPerDay)
	fmt.Fprintf(&b, "Capacity Per Round    : %d\n", p.CapacityPerRound)
	fmt.Fprintf(&b, "Total Daily Capacity  : %d\n", p.DailyCapacity)
	fmt.Fprintf(&b, "Recommended Days      : %d\n", p.DaysNeeded)
	if s := Stats(p); s.Rounds > 0 {
		fmt.Fprintf(&b, "Round Utilization     : mean %.1f%%, stddev %.1f%%, min %.1f%%\n",
			s.Mean*100, s.StdDev*100, s.Min*100)
	}
	b.WriteString("\n")

	if len(p.RoundLabels) > 0 {
		b.WriteString("Round Times:\n")
		for i, l := range p.RoundLabels {
			fmt.Fprintf(&b, "  Round %d: %s\n", i+1, l)
		}
		b.WriteString("\n")
	}

	b.WriteString("Distribution Table (Per Day & Round):\n")
	b.WriteString(SummaryTable(p).String())
	return b.String()
}
