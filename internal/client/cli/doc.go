// Package cli provides the interactive EventHive command-line client.
//
// It wires configuration, the persisted session, API services, and an
// interactive REPL. Typical flow: log in with an emailed one-time password,
// browse the event dashboard, and manage events and RSVPs.
//
// Key features:
//   - Login / Logout via email OTP
//   - Dashboard: upcoming/past tabs, free-text search, pagination
//   - Create / Edit / Delete events
//   - RSVP and personal listings (my rsvps, my created)
//   - Export an event as an iCalendar (.ics) file
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
