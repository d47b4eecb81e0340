package check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fabricops/fabcheck/pkg/inventory"
	"github.com/fabricops/fabcheck/pkg/remote"
	"github.com/fabricops/fabcheck/pkg/status"
	"github.com/fabricops/fabcheck/pkg/util"
)

// ShowInterfaceStatus is the single status command issued per device.
const ShowInterfaceStatus = "show interface status"

// Config carries everything a run needs. Credentials travel here explicitly;
// there are no package-level defaults.
type Config struct {
	// ConfigRoot is the topology document tree scanned for devices.
	ConfigRoot string

	// Session holds the device CLI connection parameters.
	Session remote.Config
}

// Checker drives the fabric-wide reachability audit.
type Checker struct {
	cfg    Config
	dialer remote.Dialer
}

// NewChecker creates a checker. A nil dialer selects SSH with the configured
// session parameters.
func NewChecker(cfg Config, dialer remote.Dialer) *Checker {
	if dialer == nil {
		dialer = remote.NewSSHDialer(cfg.Session)
	}
	return &Checker{cfg: cfg, dialer: dialer}
}

// Run scans the document tree and checks every discovered device in turn.
// Per-device failures are folded into the report; only a failed scan of the
// tree itself is returned as an error. The report passes when every device
// was reachable and every audited interface matched its declaration.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	devices, err := inventory.Scan(c.cfg.ConfigRoot)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", c.cfg.ConfigRoot, err)
	}

	report := &Report{Timestamp: start, Passed: true}
	if len(devices) == 0 {
		util.Warnf("No devices with an address found under %s", c.cfg.ConfigRoot)
		report.Passed = false
		report.Duration = time.Since(start)
		return report, nil
	}

	util.Infof("Found %d devices to check", len(devices))

	for _, dev := range devices {
		res := c.checkDevice(ctx, dev)
		if !res.Connected {
			report.Passed = false
		}
		for _, ir := range res.Interfaces {
			if !ir.Matches {
				report.Passed = false
			}
		}
		report.Devices = append(report.Devices, res)
	}

	report.Duration = time.Since(start)
	return report, nil
}

// checkDevice connects, pulls status output, and reconciles one device.
// Every failure is converted into result data; nothing escapes.
func (c *Checker) checkDevice(ctx context.Context, dev inventory.Device) DeviceResult {
	res := DeviceResult{Hostname: dev.Hostname, SourceFile: dev.SourceFile}
	log := util.WithDevice(dev.Hostname)
	log.Infof("Checking %s (%s)", dev.SourceFile, dev.Address)

	sess, err := c.dialer.Dial(ctx, dev.Address)
	if err != nil {
		res.ErrorMessage = connectionMessage(err)
		log.Warnf("Connection failed: %s", res.ErrorMessage)
		return res
	}
	defer sess.Close()
	res.Connected = true

	doc, err := inventory.LoadDocument(dev.SourcePath)
	if err != nil {
		// The document parsed during discovery; a failure now means it
		// changed or vanished mid-run. Nothing left to audit.
		util.Warnf("Rereading device document: %v", err)
		return res
	}

	entries := doc.UnpolicedInterfaces()
	if len(entries) == 0 {
		// No round-trip needed when there is nothing to compare.
		log.Infof("No interfaces without policy to check")
		return res
	}

	out, err := sess.Run(ctx, ShowInterfaceStatus)
	if err != nil {
		res.Connected = false
		res.ErrorMessage = connectionMessage(err)
		log.Warnf("Status command failed: %s", res.ErrorMessage)
		return res
	}

	res.Interfaces = Reconcile(entries, status.Parse(out))
	return res
}

// connectionMessage maps a classified connection error to the report text.
func connectionMessage(err error) string {
	switch {
	case errors.Is(err, util.ErrConnectTimeout):
		return "Connection Timeout"
	case errors.Is(err, util.ErrAuthFailed):
		return "Authentication Failed"
	default:
		return "Error: " + err.Error()
	}
}
