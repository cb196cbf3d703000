//go:build windows
// +build windows

package daemon

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"fyne.io/systray"
	"go.uber.org/zap"
)

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONINFORMATION = 0x00000040
)

// TrayApp represents system tray application
type TrayApp struct {
	daemon *Daemon
	logger *zap.Logger
	quit   chan struct{}
}

// NewTrayApp creates a new system tray application
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		daemon: daemon,
		logger: logger,
		quit:   make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayApp) onReady() {
	systray.SetIcon(calendarIcon)
	systray.SetTitle("TC")
	systray.SetTooltip("textcal year calendar")

	// Add menu items
	mGenerate := systray.AddMenuItem("Generate Now", "Regenerate the calendar file immediately")
	systray.AddSeparator()
	mStatus := systray.AddMenuItem("Status", "Show last generation time")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	// Start daemon logic in background
	go t.daemon.run()

	// Handle menu item clicks
	go func() {
		for {
			select {
			case <-mGenerate.ClickedCh:
				t.logger.Info("Generate Now clicked from tray")
				go func() {
					if err := t.daemon.GenerateNow(); err != nil {
						t.logger.Error("Manual generation failed", zap.Error(err))
						t.ShowNotification("Generation Failed", fmt.Sprintf("Error: %v", err))
					} else {
						year, _ := t.daemon.LastRun()
						t.ShowNotification("Calendar Updated", fmt.Sprintf("Calendar for %d written", year))
					}
				}()
			case <-mStatus.ClickedCh:
				t.logger.Info("Status clicked from tray")
				t.showStatus()
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				t.daemon.Stop()
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	close(t.quit)
}

// ShowNotification shows a notification (Windows only)
func (t *TrayApp) ShowNotification(title, message string) {
	// fyne.io/systray doesn't have built-in notification support
	// Just log for now
	t.logger.Info("Notification", zap.String("title", title), zap.String("message", message))
}

// showStatus shows when the calendar was last regenerated
func (t *TrayApp) showStatus() {
	year, lastRun := t.daemon.LastRun()

	var message string
	if year == 0 {
		message = "No calendar generated yet"
	} else {
		message = fmt.Sprintf("Year: %d\nLast run: %s", year, lastRun.Format(time.RFC1123))
		systray.SetTooltip(message)
	}

	showMessageBox("textcal Status", message)
}

func showMessageBox(title, message string) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK|MB_ICONINFORMATION),
	)
}

// calendarIcon is a minimal 16x16 monochrome ICO used for the tray.
var calendarIcon = []byte{
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x10, 0x10, 0x02, 0x00, 0x01, 0x00,
	0x01, 0x00, 0xb0, 0x00, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00, 0x28, 0x00,
	0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x01, 0x00,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x7f, 0xfe, 0x00, 0x00, 0x40, 0x02, 0x00, 0x00,
	0x5f, 0xfa, 0x00, 0x00, 0x40, 0x02, 0x00, 0x00, 0x5a, 0x5a, 0x00, 0x00,
	0x40, 0x02, 0x00, 0x00, 0x5a, 0x5a, 0x00, 0x00, 0x40, 0x02, 0x00, 0x00,
	0x5a, 0x5a, 0x00, 0x00, 0x40, 0x02, 0x00, 0x00, 0x7f, 0xfe, 0x00, 0x00,
	0x44, 0x22, 0x00, 0x00, 0x7f, 0xfe, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00,
	0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00,
	0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00,
	0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00,
	0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00,
	0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00,
}
