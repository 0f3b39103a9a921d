// Package setup orchestrates a challenge setup run.
//
// The Manager owns the sequence the tool exists for: create the day
// directory, download the input, optionally save or refresh the problem
// statement, and scaffold the requested language skeletons. Every observable
// action is emitted as a ProgressEvent with a severity level, so the plain
// CLI and the TUI render the same run differently without the Manager
// knowing which one is listening.
//
//	manager := setup.NewManager(settings, client, setup.Options{
//	    FetchStatement: true,
//	    Languages:      []string{"go", "rust"},
//	}, func(e setup.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	err := manager.Run(ctx, ch)
//
// Statement refreshes classify their outcome as created, updated, or
// unchanged; the comparison is byte-for-byte over the rendered text, full
// replacement only.
package setup
