package mpvplayer

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/wildeyedskies/go-mpv/mpv"
	"go.uber.org/multierr"
)

// Reply IDs for observed properties. PROPERTY_CHANGE events carry the ID
// in Reply_Userdata so the listener knows which property moved.
const (
	PropTimePos uint64 = iota + 1
	PropDuration
	PropPause
	PropPausedForCache
	PropEOFReached
)

// Options are applied before the handle is initialized
type Options struct {
	VideoOutput    string
	HWDec          string
	NativeControls bool
}

type Mpvplayer struct {
	*mpv.Mpv
	EventChannel chan *mpv.Event
}

func (m *Mpvplayer) GetDouble(name string) (float64, error) {
	v, err := m.GetProperty(name, mpv.FORMAT_DOUBLE)
	if err != nil {
		return 0, errors.Wrapf(err, "get %s", name)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, errors.Errorf("get %s: unexpected type %T", name, v)
	}
	return f, nil
}

func (m *Mpvplayer) GetFlag(name string) (bool, error) {
	v, err := m.GetProperty(name, mpv.FORMAT_FLAG)
	if err != nil {
		return false, errors.Wrapf(err, "get %s", name)
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.Errorf("get %s: unexpected type %T", name, v)
	}
	return b, nil
}

func (m *Mpvplayer) GetString(name string) (string, error) {
	v, err := m.GetProperty(name, mpv.FORMAT_STRING)
	if err != nil {
		return "", errors.Wrapf(err, "get %s", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Errorf("get %s: unexpected type %T", name, v)
	}
	return s, nil
}

func (m *Mpvplayer) SetDouble(name string, value float64) error {
	return errors.Wrapf(m.SetProperty(name, mpv.FORMAT_DOUBLE, value), "set %s", name)
}

func (m *Mpvplayer) SetFlag(name string, value bool) error {
	return errors.Wrapf(m.SetProperty(name, mpv.FORMAT_FLAG, value), "set %s", name)
}

func (m *Mpvplayer) SetString(name, value string) error {
	return errors.Wrapf(m.SetPropertyString(name, value), "set %s", name)
}

func (m *Mpvplayer) Load(url string) error {
	return errors.Wrap(m.Command([]string{"loadfile", url}), "loadfile")
}

// SeekAbsolute jumps to seconds from the start of the file
func (m *Mpvplayer) SeekAbsolute(seconds float64) error {
	return errors.Wrap(m.Command([]string{"seek", strconv.FormatFloat(seconds, 'f', 3, 64), "absolute"}), "seek")
}

// nativeInput is the part of the handle that mpv's own controls live behind
type nativeInput interface {
	Command(cmd []string) error
	SetPropertyString(name, value string) error
}

// HideNativeControls hides mpv's on-screen controller and stops mpv from
// acting on keys pressed in its window
func (m *Mpvplayer) HideNativeControls() error {
	return hideNativeControls(m.Mpv)
}

func hideNativeControls(m nativeInput) error {
	return multierr.Combine(
		errors.Wrap(m.Command([]string{"script-message", "osc-visibility", "never", "no-osd"}), "hide osc"),
		errors.Wrap(m.SetPropertyString("input-default-bindings", "no"), "disable default bindings"),
		errors.Wrap(m.SetPropertyString("input-vo-keyboard", "no"), "disable window keyboard"),
	)
}

func (m *Mpvplayer) Quit() error {
	return errors.Wrap(m.Command([]string{"quit"}), "quit")
}

func CreateMPVInstance(opts Options) (*mpv.Mpv, error) {
	mpvInstance := mpv.Create()

	// Ended media stays loaded and paused on its last frame.
	mpvInstance.SetOptionString("keep-open", "yes")
	mpvInstance.SetOptionString("force-window", "yes")
	mpvInstance.SetOptionString("idle", "yes")
	if opts.VideoOutput != "" {
		mpvInstance.SetOptionString("vo", opts.VideoOutput)
	}
	if opts.HWDec != "" {
		mpvInstance.SetOptionString("hwdec", opts.HWDec)
	}
	if opts.NativeControls {
		mpvInstance.SetOptionString("osc", "yes")
		mpvInstance.SetOptionString("input-default-bindings", "yes")
		mpvInstance.SetOptionString("input-vo-keyboard", "yes")
	} else {
		mpvInstance.SetOptionString("osc", "no")
	}

	err := mpvInstance.Initialize()
	if err != nil {
		mpvInstance.TerminateDestroy()
		return nil, errors.Wrap(err, "initialize mpv")
	}

	observed := []struct {
		id     uint64
		name   string
		format mpv.Format
	}{
		{PropTimePos, "time-pos", mpv.FORMAT_DOUBLE},
		{PropDuration, "duration", mpv.FORMAT_DOUBLE},
		{PropPause, "pause", mpv.FORMAT_FLAG},
		{PropPausedForCache, "paused-for-cache", mpv.FORMAT_FLAG},
		{PropEOFReached, "eof-reached", mpv.FORMAT_FLAG},
	}
	for _, p := range observed {
		if err := mpvInstance.ObserveProperty(p.id, p.name, p.format); err != nil {
			mpvInstance.TerminateDestroy()
			return nil, errors.Wrapf(err, "observe %s", p.name)
		}
	}

	return mpvInstance, nil
}
