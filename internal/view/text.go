package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteProducts prints the products screen for a terminal.
func WriteProducts(w io.Writer, s ProductsScreen) error {
	var labels []string
	for _, b := range s.Categories {
		if b.Active {
			labels = append(labels, "["+b.Label+"]")
		} else {
			labels = append(labels, b.Label)
		}
	}
	fmt.Fprintf(w, "Categories: %s\n", strings.Join(labels, "  "))
	writeBadge(w, s.Badge)

	if s.Error != nil {
		fmt.Fprintf(w, "\n! %s\n", s.Error.Message)
	}
	if err := writeGrid(w, s.Grid); err != nil {
		return err
	}
	if s.Detail != nil {
		fmt.Fprintln(w)
		writeDetail(w, s.Detail)
	}
	return nil
}

// WriteHome prints the trending strip.
func WriteHome(w io.Writer, s HomeScreen) error {
	fmt.Fprintln(w, "Trending now")
	writeBadge(w, s.Badge)
	return writeGrid(w, s.Trending)
}

// WriteDetail prints a single detail panel.
func WriteDetail(w io.Writer, d *Detail) error {
	writeDetail(w, d)
	return nil
}

// WriteCart prints the cart lines and summary.
func WriteCart(w io.Writer, s CartScreen) error {
	if len(s.Lines) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tQTY")
		for _, l := range s.Lines {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", l.ID, l.Title, l.Price, l.Qty)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, s.Summary)
	return err
}

func writeBadge(w io.Writer, b Badge) {
	if !b.Hidden {
		fmt.Fprintf(w, "Cart: %s\n", b.Text)
	}
}

func writeGrid(w io.Writer, g Grid) error {
	switch {
	case g.Banner != nil && g.Banner.Kind == BannerKindError:
		fmt.Fprintf(w, "\n! %s\n", g.Banner.Message)
		return nil
	case g.Banner != nil:
		fmt.Fprintf(w, "\n%s\n", g.Banner.Message)
		return nil
	case len(g.Loading) > 0:
		fmt.Fprintf(w, "\nLoading %d products...\n", len(g.Loading))
		return nil
	case len(g.Cards) == 0:
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tRATING\tPRICE")
	for _, c := range g.Cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, truncate(c.Title, 48), c.CategoryLabel, c.Rating, c.Price)
	}
	return tw.Flush()
}

func writeDetail(w io.Writer, d *Detail) {
	if d.Content == nil {
		fmt.Fprintf(w, "Product %d: %s\n", d.ProductID, d.Status)
		return
	}
	c := d.Content
	fmt.Fprintf(w, "%s\n%s | %s\n%s\n\n%s\n%s\n", c.Title, c.Category, c.Price, c.Rating, c.Description, c.Image)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
