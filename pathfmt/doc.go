// Package pathfmt formats filesystem paths for display and for PowerShell command lines.
//
// SmartTruncate shortens a path to a display width while keeping its root and final
// segment recognizable:
//
//	SmartTruncate(`c:\user\documents\projects`, 20) // c:\...\projects\
//	SmartTruncate(`c:\thisisaverylongname`, 10)     // c:\...ame\
//
// EscapePSPath renders any string as a literal PowerShell token:
//
//	EscapePSPath("Gun 'n Roses")    // "Gun 'n Roses"
//	EscapePSPath("Hello [ Kitty ]") // 'Hello `[ Kitty `]'
//
// All functions are pure and safe for concurrent use.
package pathfmt
