// clipboard/clipboard_windows.go
//go:build windows
// +build windows

package clipboard

// PowerShell's Set-Clipboard reads stdin; Get-Clipboard -Raw keeps newlines.
func platformHelpers() (helper, helper, error) {
	return helper{name: "powershell", args: []string{"-NoProfile", "-Command", "$input | Set-Clipboard"}},
		helper{name: "powershell", args: []string{"-NoProfile", "-Command", "Get-Clipboard -Raw"}},
		nil
}
