package results

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var csvHeader = []string{"position_id", "position", "candidate_id", "candidate", "votes", "percentage", "winner"}

// WriteCSV writes one row per candidate.
func WriteCSV(w io.Writer, s Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range s.Positions {
		for _, c := range p.Candidates {
			row := []string{
				string(p.PositionID),
				p.Title,
				string(c.CandidateID),
				c.Name,
				strconv.FormatInt(c.Votes, 10),
				c.Percentage.StringFixed(1),
				strconv.FormatBool(c.Winner),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteText writes a plain-text report suitable for printing or pasting.
func WriteText(w io.Writer, s Summary, voters int64, generatedAt time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "ELECTION RESULTS\n")
	fmt.Fprintf(bw, "Generated %s (%s)\n", generatedAt.UTC().Format(time.RFC1123), humanize.Time(generatedAt))
	fmt.Fprintf(bw, "Voters: %s   Votes cast: %s\n", humanize.Comma(voters), humanize.Comma(s.TotalVotes))

	for _, p := range s.Positions {
		fmt.Fprintf(bw, "\n%s\n%s\n", p.Title, strings.Repeat("-", len(p.Title)))
		for _, c := range p.Candidates {
			mark := " "
			if c.Winner {
				mark = "*"
			}
			fmt.Fprintf(bw, "%s %-32s %8s  %5s%%\n", mark, c.Name, humanize.Comma(c.Votes), c.Percentage.StringFixed(1))
		}
		if p.Winner == nil {
			fmt.Fprintf(bw, "  no votes yet\n")
		} else {
			fmt.Fprintf(bw, "  winner: %s with %s of %s votes\n",
				p.Winner.CandidateName, humanize.Comma(p.Winner.Count), humanize.Comma(p.Total))
		}
	}

	return bw.Flush()
}
