package util

import (
	"fmt"
	"io"
	"sort"

	"food-picker/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DayCount is the number of comments posted on one UTC date.
type DayCount struct {
	Day   string
	Count int
}

// CommentsPerDay groups comments by UTC date, oldest day first.
func CommentsPerDay(comments []models.Comment) []DayCount {
	counts := make(map[string]int)
	for _, c := range comments {
		counts[c.CreatedAt.UTC().Format("2006-01-02")]++
	}

	days := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		days = append(days, DayCount{Day: day, Count: n})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}

// RenderCommentActivity writes an HTML bar chart of comments per day to w.
func RenderCommentActivity(w io.Writer, comments []models.Comment) error {
	perDay := CommentsPerDay(comments)

	xAxis := make([]string, 0, len(perDay))
	bars := make([]opts.BarData, 0, len(perDay))
	for _, d := range perDay {
		xAxis = append(xAxis, d.Day)
		bars = append(bars, opts.BarData{Name: d.Day, Value: d.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Comment activity",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Comments per day",
			Subtitle: fmt.Sprintf("%d comments total", len(comments)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xAxis).AddSeries("Comments", bars,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render activity chart: %w", err)
	}
	return nil
}
