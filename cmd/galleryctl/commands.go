package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"photogallery/internal/domain/models"
	"photogallery/internal/view"
)

type ListCmd struct {
	Author []string `short:"a" help:"Show only entries by this author. Repeatable."`
	Search string   `short:"s" help:"Case-insensitive text search."`
}

func (l *ListCmd) Run(ctx *Context) error {
	if err := ctx.Controller.Load(ctx); err != nil {
		return err
	}

	for _, a := range l.Author {
		ctx.Controller.ToggleAuthorFilter(a)
	}
	ctx.Controller.Search(l.Search)

	printChips(os.Stdout, ctx.Controller.Chips())
	return printRows(os.Stdout, view.VisibleRows(ctx.Controller.Rows()))
}

type AddCmd struct {
	Author      string `required:"" help:"Photo author."`
	Alt         string `required:"" help:"Alternative text."`
	Tags        string `required:"" help:"Comma separated tags."`
	Image       string `required:"" help:"Image URL."`
	Description string `required:"" help:"Description."`
}

func (a *AddCmd) Run(ctx *Context) error {
	fields := models.EntryFields{
		Author:      a.Author,
		Alt:         a.Alt,
		Tags:        a.Tags,
		Image:       a.Image,
		Description: a.Description,
	}
	if err := ctx.Controller.Submit(ctx, fields); err != nil {
		return err
	}

	color.Green("added entry by %s", a.Author)
	return nil
}

type UpdateCmd struct {
	ID          int64  `arg:"" help:"Entry id."`
	Author      string `help:"New author."`
	Alt         string `help:"New alternative text."`
	Tags        string `help:"New comma separated tags."`
	Image       string `help:"New image URL."`
	Description string `help:"New description."`
}

func (u *UpdateCmd) Run(ctx *Context) error {
	entry, err := ctx.Client.UpdateEntry(ctx, u.ID, models.EntryFields{
		Author:      u.Author,
		Alt:         u.Alt,
		Tags:        u.Tags,
		Image:       u.Image,
		Description: u.Description,
	})
	if err != nil {
		return err
	}

	return printRows(os.Stdout, view.Rows([]models.Entry{entry}, nil, ""))
}

type DeleteCmd struct {
	ID int64 `arg:"" help:"Entry id."`
}

func (d *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Client.DeleteEntry(ctx, d.ID); err != nil {
		return err
	}

	color.Green("deleted entry %d", d.ID)
	return nil
}

type ResetCmd struct{}

func (r *ResetCmd) Run(ctx *Context) error {
	if err := ctx.Controller.Reset(ctx); err != nil {
		return err
	}

	return printRows(os.Stdout, ctx.Controller.Rows())
}

func printChips(w io.Writer, chips []view.Chip) {
	active := color.New(color.FgGreen, color.Bold)

	names := make([]string, 0, len(chips))
	for _, c := range chips {
		if c.Active {
			names = append(names, active.Sprint("["+c.Name+"]"))
			continue
		}
		names = append(names, c.Name)
	}

	fmt.Fprintln(w, "authors:", strings.Join(names, "  "))
}

func printRows(w io.Writer, rows []view.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tAUTHOR\tALT\tTAGS\tDESCRIPTION")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			r.Entry.ID,
			r.Entry.Author,
			r.Entry.Alt,
			strings.Join(r.Tags, " "),
			r.Entry.Description,
		)
	}

	return tw.Flush()
}
