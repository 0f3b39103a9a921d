// Package scaffold creates minimal per-language solution skeletons.
//
// Supported languages are python, rust, and go. Each gets a subdirectory of
// the day folder and its ecosystem's smallest sensible initialization:
//
//	rust/    Cargo.toml + src/main.rs   (cargo new, crate renamed)
//	go/      go.mod + main.go           (go mod init)
//	python/  .venv + main.py            (uv venv; venv is best-effort)
//
// Native tools are invoked through the Runner interface; when a tool is not
// on PATH the scaffolder writes the manifest stubs itself. An existing
// language directory is reported as ErrExists and left alone.
//
// Languages are independent of each other: the setup manager runs them one at
// a time and a failure in one never prevents the others from being attempted.
package scaffold
