package main

import (
	"chat-relay/domain/chat"
	"fmt"
	"io"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type printer struct {
	colours bool
}

func (p *printer) paint(style color.Style, text string) string {
	if !p.colours {
		return text
	}
	return style.Render(text)
}

func (p *printer) sent(w io.Writer, msg chat.Message) {
	fmt.Fprintf(w, "%s message %s accepted\n", p.paint(color.New(color.FgGreen), "✔"), msg.ID)
}

func (p *printer) streamed(w io.Writer, msg chat.Message) {
	fmt.Fprintf(w, "%s %s %s\n",
		p.paint(color.New(color.FgCyan), msg.CreatedAt.Local().Format(time.TimeOnly)),
		p.paint(color.New(color.BgBlack, color.FgGreen), msg.Sender+":"),
		msg.Content)
}

func (p *printer) history(w io.Writer, messages []chat.Message) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Time", "Sender", "Content"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, msg := range messages {
		table.Append([]string{
			msg.ID.String(),
			msg.CreatedAt.UTC().Format(time.RFC3339),
			msg.Sender,
			msg.Content,
		})
	}
	table.Render()
}

func (p *printer) deleted(w io.Writer, success bool, detail string) {
	if success {
		fmt.Fprintln(w, p.paint(color.New(color.FgGreen), detail))
		return
	}
	fmt.Fprintln(w, p.paint(color.New(color.FgYellow), detail))
}
