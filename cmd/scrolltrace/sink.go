package main

import (
	"fmt"
	"io"

	"github.com/ytget/profile-header/internal/animation"
	"github.com/ytget/profile-header/internal/coordinator"
	"github.com/ytget/profile-header/internal/model"
)

// printSink writes every coordinator output as one line
type printSink struct {
	out      io.Writer
	frames   bool
	commands []coordinator.ScrollCommand
}

func (s *printSink) ApplyFrame(frame animation.Frame) {
	if s.frames {
		fmt.Fprintf(s.out, "  frame d=%.2f\n%s", frame.Distance, frame)
		return
	}
	fmt.Fprintf(s.out, "  frame d=%.2f avatar.y=%.2f avatar.opacity=%.3f username.scale=%.3f background.y=%.2f\n",
		frame.Distance,
		frame.Lookup(model.ElementAvatar, model.PropertyTranslateY, 0),
		frame.Lookup(model.ElementAvatar, model.PropertyOpacity, 1),
		frame.Lookup(model.ElementUsername, model.PropertyScaleY, 1),
		frame.Lookup(model.ElementHeaderBackground, model.PropertyOffsetY, 0),
	)
}

func (s *printSink) UpdateScrollBar(update coordinator.ScrollBarUpdate) {
	fmt.Fprintf(s.out, "  scrollbar value=%.2f max=%.2f viewport=%.2f\n", update.Value, update.Maximum, update.ViewportSize)
}

func (s *printSink) ScrollTo(cmd coordinator.ScrollCommand) {
	fmt.Fprintf(s.out, "  scrollTo %s %.2f (%s, animated=%t)\n", cmd.Surface, cmd.Offset, cmd.Reason, cmd.Animated)
	s.commands = append(s.commands, cmd)
}

func (s *printSink) SetActionButtonsEnabled(enabled bool) {
	fmt.Fprintf(s.out, "  buttons enabled=%t\n", enabled)
}

// takeCommands returns and clears the scroll commands received so far
func (s *printSink) takeCommands() []coordinator.ScrollCommand {
	cmds := s.commands
	s.commands = nil
	return cmds
}
