package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/open-source-firmware/hcimon/pkg/capture"
	"github.com/open-source-firmware/hcimon/pkg/cmdutil"
	"github.com/open-source-firmware/hcimon/pkg/framer"
	"github.com/open-source-firmware/hcimon/pkg/metrics"
	"github.com/open-source-firmware/hcimon/pkg/monitor"
	"github.com/open-source-firmware/hcimon/pkg/render"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

// context is the context struct required by kong command line parser.
type context struct{}

type dumpCmd struct {
	Path    string `arg:"" type:"accessiblefile" help:"Monitor-channel capture file to dissect ('-' for stdin)"`
	Debug   bool   `optional:"" help:"spew.Dump every decoded record before rendering it"`
	ShowACL bool   `optional:"" help:"Render ACL payload bytes"`
	ShowSCO bool   `optional:"" help:"Render SCO payload bytes"`
}

type encryptCmd struct {
	cmdutil.PassphraseEmbed
	In  string `arg:"" type:"accessiblefile" help:"Plaintext capture file ('-' for stdin)"`
	Out string `arg:"" help:"Path to write the encrypted capture file"`
}

type decryptCmd struct {
	cmdutil.PassphraseEmbed
	In  string `arg:"" type:"accessiblefile" help:"Encrypted capture file"`
	Out string `arg:"" help:"Path to write the recovered plaintext capture file"`
}

type serveMetricsCmd struct {
	Addr string `optional:"" default:":9531" help:"Address to serve Prometheus metrics on"`
}

type serialDemoCmd struct {
	Family string `optional:"" default:"bredrle" enum:"bredrle,bredr,le,amp" help:"Controller family advertised on the pseudo-terminal"`
}

// cli is the main command line interface struct required by kong command
// line parser.
var cli struct {
	Dump         dumpCmd         `cmd:"" help:"Decode a monitor-channel capture file"`
	Encrypt      encryptCmd      `cmd:"" help:"Encrypt a capture file with a passphrase"`
	Decrypt      decryptCmd      `cmd:"" help:"Decrypt a capture file encrypted with 'encrypt'"`
	ServeMetrics serveMetricsCmd `cmd:"" help:"Serve Prometheus metrics over HTTP until interrupted"`
	SerialDemo   serialDemoCmd   `cmd:"" help:"Reassemble H:4 command frames fed over a pseudo-terminal"`
}

// recordTime converts a Record's raw microseconds-since-epoch timestamp
// into a *time.Time for the sink header, or nil when the source never
// supplied one (e.g. a Record built directly rather than read off the
// wire by ReadRecords).
func recordTime(microseconds uint64) *time.Time {
	if microseconds == 0 {
		return nil
	}
	tv := time.UnixMicro(int64(microseconds))
	return &tv
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// Run executes when the dump command is invoked.
func (t *dumpCmd) Run(ctx *context) error {
	f, err := openInput(t.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", t.Path, err)
	}
	defer f.Close()

	filter := render.ShowIndex
	if t.ShowACL {
		filter |= render.ShowACLData
	}
	if t.ShowSCO {
		filter |= render.ShowSCOData
	}

	table := &monitor.IndexTable{}
	reg := metrics.NewRegistry()

	records, errs := monitor.ReadRecords(f)
	for rec := range records {
		if t.Debug {
			spew.Dump(rec)
		}
		s := render.NewSink(os.Stdout, filter)
		s.OnMalformed = reg.RecordMalformed
		s.Header(recordTime(rec.Timestamp), rec.Index, render.ChannelMonitor)
		monitor.Dispatch(s, table, rec)
		reg.RecordPacket(fmt.Sprintf("0x%02x", rec.Opcode))
		reg.SetIndexTableOccupancy(table.Occupancy())
	}
	return <-errs
}

// Run executes when the encrypt command is invoked.
func (t *encryptCmd) Run(ctx *context) error {
	f, err := openInput(t.In)
	if err != nil {
		return fmt.Errorf("open %s: %w", t.In, err)
	}
	defer f.Close()

	plaintext, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", t.In, err)
	}

	out, err := os.Create(t.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", t.Out, err)
	}
	defer out.Close()

	if err := capture.Encrypt(out, t.Passphrase, plaintext); err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	fmt.Printf("Wrote encrypted capture to %s\n", t.Out)
	return nil
}

// Run executes when the decrypt command is invoked.
func (t *decryptCmd) Run(ctx *context) error {
	f, err := openInput(t.In)
	if err != nil {
		return fmt.Errorf("open %s: %w", t.In, err)
	}
	defer f.Close()

	plaintext, err := capture.Decrypt(f, t.Passphrase)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	if err := os.WriteFile(t.Out, plaintext, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", t.Out, err)
	}
	fmt.Printf("Wrote recovered capture to %s\n", t.Out)
	return nil
}

// Run executes when the serve-metrics command is invoked.
func (t *serveMetricsCmd) Run(ctx *context) error {
	reg := metrics.NewRegistry()
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	fmt.Printf("Serving metrics on %s/metrics\n", t.Addr)
	return http.ListenAndServe(t.Addr, mux)
}

// setRaw disables line discipline on the pty slave so the H:4 framer sees
// the exact bytes a real controller transport would deliver, rather than
// a tty layer's canonical-mode editing. Mirrors the raw-termios handling
// the reference serial emulator performs on its own pseudo-terminal pair.
func setRaw(fd uintptr) error {
	termios, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	if err != nil {
		return err
	}
	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	return unix.IoctlSetTermios(int(fd), unix.TCSETS, termios)
}

func familyOf(name string) framer.ControllerFamily {
	switch name {
	case "bredr":
		return framer.BREDR
	case "le":
		return framer.LE
	case "amp":
		return framer.AMP
	default:
		return framer.BREDRLE
	}
}

// Run executes when the serial-demo command is invoked. It opens a pty,
// prints the slave's name for a client to attach to, and reassembles
// whatever H:4 command frames are written to the master end.
func (t *serialDemoCmd) Run(ctx *context) error {
	ptmx, pts, err := pty.Open()
	if err != nil {
		return fmt.Errorf("open pty: %w", err)
	}
	defer ptmx.Close()
	defer pts.Close()

	if err := setRaw(pts.Fd()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not put %s into raw mode: %v\n", pts.Name(), err)
	}

	fmt.Printf("H:4 command frames may be written to %s\n", pts.Name())

	f := framer.New(familyOf(t.Family), func(header, body []byte) {
		s := render.NewSink(os.Stdout, render.ShowIndex)
		s.Line("Reassembled command frame: header=% x body=% x", header, body)
	})
	f.OnError(func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	})

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			f.Feed(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read pty: %w", err)
		}
	}
}
