package panel

import (
	"bytes"
	"image"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

func newTestDev(t *testing.T, opts *Opts) (*Dev, *spitest.Record, *gpiotest.Pin) {
	t.Helper()
	port := &spitest.Record{}
	dc := &gpiotest.Pin{N: "DC"}
	dev, err := NewSPI(port, dc, opts)
	if err != nil {
		t.Fatalf("NewSPI() error = %v", err)
	}
	return dev, port, dc
}

func TestNewSPIOpts(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantErr bool
	}{
		{"nil options (uses defaults)", nil, false},
		{"valid 256x64", &Opts{W: 256, H: 64}, false},
		{"valid 8x2", &Opts{W: 8, H: 2}, false},
		{"rotated", &Opts{W: 256, H: 64, Rotated: true}, false},
		{"odd width", &Opts{W: 255, H: 64}, true},
		{"width 6 misaligns window", &Opts{W: 6, H: 1}, true},
		{"width 250 misaligns window", &Opts{W: 250, H: 64}, true},
		{"full ram width", &Opts{W: 480, H: 64}, false},
		{"width zero", &Opts{W: 0, H: 64}, true},
		{"width > 480", &Opts{W: 512, H: 64}, true},
		{"height zero", &Opts{W: 256, H: 0}, true},
		{"height > 128", &Opts{W: 256, H: 200}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSPI(&spitest.Record{}, &gpiotest.Pin{N: "DC"}, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSPI() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInitClearsAndTurnsOn(t *testing.T) {
	dev, port, _ := newTestDev(t, &Opts{W: 8, H: 2})

	if len(port.Ops) != 4 {
		t.Fatalf("init sent %d transfers, want 4", len(port.Ops))
	}
	// Window for an 8 pixel panel centered in 480 columns: 236/4 = 59.
	wantWindow := []byte{0x15, 59, 60, 0x75, 0, 1, 0x5C}
	if !bytes.Equal(port.Ops[1].W, wantWindow) {
		t.Errorf("window = % X, want % X", port.Ops[1].W, wantWindow)
	}
	if !bytes.Equal(port.Ops[2].W, make([]byte, 8)) {
		t.Errorf("clear frame = % X, want zeros", port.Ops[2].W)
	}
	if !bytes.Equal(port.Ops[3].W, []byte{0xAF}) {
		t.Errorf("last command = % X, want AF", port.Ops[3].W)
	}
	if dev.String() != "panel.SSD1322{8x2}" {
		t.Errorf("String() = %q", dev.String())
	}
}

func TestWindowAlignment(t *testing.T) {
	tests := []struct {
		w          int
		start, end byte
	}{
		{8, 59, 60},
		{248, 29, 90},
		{256, 28, 91},
		{480, 0, 119},
	}

	for _, tt := range tests {
		port := &spitest.Record{}
		if _, err := NewSPI(port, &gpiotest.Pin{N: "DC"}, &Opts{W: tt.w, H: 1}); err != nil {
			t.Fatalf("NewSPI(W=%d) error = %v", tt.w, err)
		}
		win := port.Ops[1].W
		if win[1] != tt.start || win[2] != tt.end {
			t.Errorf("W=%d window = %d..%d, want %d..%d", tt.w, win[1], win[2], tt.start, tt.end)
		}
		if got := int(win[2]-win[1]+1) * 4; got != tt.w {
			t.Errorf("W=%d window spans %d pixels", tt.w, got)
		}
	}
}

func TestDrawSendsFrame(t *testing.T) {
	dev, port, dc := newTestDev(t, &Opts{W: 8, H: 1})

	img := NewNibble(dev.Bounds())
	img.SetGray4(0, 0, Gray4{Y: 15})
	img.SetGray4(3, 0, Gray4{Y: 9})
	if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	last := port.Ops[len(port.Ops)-1].W
	if !bytes.Equal(last, []byte{0xF0, 0x09, 0x00, 0x00}) {
		t.Errorf("frame = % X, want F0 09 00 00", last)
	}
	if dc.L != gpio.High {
		t.Error("DC should be high while sending data")
	}
	if !bytes.Equal(dev.Frame().Pix, last) {
		t.Error("Frame() does not match the data sent")
	}
}

func TestDrawConvertsImages(t *testing.T) {
	dev, port, _ := newTestDev(t, &Opts{W: 8, H: 1})

	src := image.NewGray(image.Rect(0, 0, 8, 1))
	src.Pix[0] = 0xFF
	if err := dev.Draw(dev.Bounds(), src, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	last := port.Ops[len(port.Ops)-1].W
	if !bytes.Equal(last, []byte{0xF0, 0x00, 0x00, 0x00}) {
		t.Errorf("frame = % X, want F0 00 00 00", last)
	}
}

func TestHalt(t *testing.T) {
	dev, port, _ := newTestDev(t, &Opts{W: 8, H: 1})

	if err := dev.Halt(); err != nil {
		t.Fatalf("Halt() error = %v", err)
	}
	if last := port.Ops[len(port.Ops)-1].W; !bytes.Equal(last, []byte{0xAE}) {
		t.Errorf("Halt sent % X, want AE", last)
	}
	if err := dev.Draw(dev.Bounds(), NewNibble(dev.Bounds()), image.Point{}); err == nil {
		t.Error("Draw should fail when halted")
	}
	n := len(port.Ops)
	if err := dev.Halt(); err != nil {
		t.Errorf("second Halt() error = %v", err)
	}
	if len(port.Ops) != n {
		t.Error("second Halt sent commands")
	}
}
