// Package ui contains the Bubble Tea program that drives the orchestrator.
//
// Message flow:
//   - Key presses are handed to core.App.HandleKey.
//   - A tick message runs one core.App.Tick frame and schedules the next tick.
//   - Events read from the event bus are applied in order: render requests
//     are traced (Bubble Tea repaints after every update), resize updates the
//     shared screen size, suspend and resume map to the matching Bubble Tea
//     commands, and the rest (quit, synthetic keys, topic) go to
//     core.App.HandleEvent.
//
// Any error returned by the core ends the program; Model.Err exposes it to the
// caller of tea.Program.Run.
package ui
