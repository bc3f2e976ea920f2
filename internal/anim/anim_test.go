package anim

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	transparent = color.RGBA{}
	red         = color.RGBA{R: 255, A: 255}
	green       = color.RGBA{G: 255, A: 255}
	blue        = color.RGBA{B: 255, A: 255}
	testPalette = color.Palette{transparent, red, green, blue}
)

type testFrame struct {
	rect     image.Rectangle
	index    uint8
	delay    int
	disposal byte
}

func encodeGIF(t *testing.T, w, h int, frames []testFrame) []byte {
	t.Helper()
	g := &gif.GIF{
		Config: image.Config{ColorModel: testPalette, Width: w, Height: h},
	}
	for _, f := range frames {
		img := image.NewPaletted(f.rect, testPalette)
		for i := range img.Pix {
			img.Pix[i] = f.index
		}
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, f.delay)
		g.Disposal = append(g.Disposal, f.disposal)
	}

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return buf.Bytes()
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestDecode_FramesAndDelays(t *testing.T) {
	full := image.Rect(0, 0, 4, 3)
	data := encodeGIF(t, 4, 3, []testFrame{
		{rect: full, index: 1, delay: 10},
		{rect: full, index: 2, delay: 5},
		{rect: full, index: 3, delay: 20},
	})

	a, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 4, a.Width)
	assert.Equal(t, 3, a.Height)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 50 * time.Millisecond, 200 * time.Millisecond},
		[]time.Duration{a.Frames[0].Delay, a.Frames[1].Delay, a.Frames[2].Delay})
	assert.Equal(t, red, rgbaAt(a.Frames[0].Image, 0, 0))
	assert.Equal(t, green, rgbaAt(a.Frames[1].Image, 3, 2))
	assert.Equal(t, blue, rgbaAt(a.Frames[2].Image, 1, 1))
}

func TestDecode_DisposalNoneKeepsPreviousPixels(t *testing.T) {
	data := encodeGIF(t, 4, 3, []testFrame{
		{rect: image.Rect(0, 0, 4, 3), index: 1, disposal: gif.DisposalNone},
		{rect: image.Rect(0, 0, 1, 1), index: 2, disposal: gif.DisposalNone},
	})

	a, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, green, rgbaAt(a.Frames[1].Image, 0, 0))
	assert.Equal(t, red, rgbaAt(a.Frames[1].Image, 2, 2))
}

func TestDecode_DisposalBackgroundClearsArea(t *testing.T) {
	data := encodeGIF(t, 4, 3, []testFrame{
		{rect: image.Rect(0, 0, 4, 3), index: 1, disposal: gif.DisposalBackground},
		{rect: image.Rect(0, 0, 1, 1), index: 2, disposal: gif.DisposalNone},
	})

	a, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, green, rgbaAt(a.Frames[1].Image, 0, 0))
	assert.Equal(t, uint8(0), rgbaAt(a.Frames[1].Image, 2, 2).A)
}

func TestDecode_DisposalPreviousRestoresScreen(t *testing.T) {
	data := encodeGIF(t, 4, 3, []testFrame{
		{rect: image.Rect(0, 0, 4, 3), index: 1, disposal: gif.DisposalNone},
		{rect: image.Rect(0, 0, 1, 1), index: 2, disposal: gif.DisposalPrevious},
		{rect: image.Rect(3, 2, 4, 3), index: 3, disposal: gif.DisposalNone},
	})

	a, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, green, rgbaAt(a.Frames[1].Image, 0, 0))
	assert.Equal(t, red, rgbaAt(a.Frames[2].Image, 0, 0))
	assert.Equal(t, blue, rgbaAt(a.Frames[2].Image, 3, 2))
}

func TestDecode_FramesAreIndependentSnapshots(t *testing.T) {
	full := image.Rect(0, 0, 2, 2)
	data := encodeGIF(t, 2, 2, []testFrame{
		{rect: full, index: 1},
		{rect: full, index: 2},
	})

	a, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.NotSame(t, a.Frames[0].Image, a.Frames[1].Image)
	assert.Equal(t, red, rgbaAt(a.Frames[0].Image, 1, 1))
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not a gif")))
	require.Error(t, err)

	var de *DecodeError
	assert.True(t, errors.As(err, &de))
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.gif")

	_, err := Load(path)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, path, de.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.gif")
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.gif")
	data := encodeGIF(t, 3, 3, []testFrame{{rect: image.Rect(0, 0, 3, 3), index: 1, delay: 4}})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	a, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 40*time.Millisecond, a.Frames[0].Delay)
}

func TestAnimation_FrameWraps(t *testing.T) {
	a := &Animation{Frames: []Frame{{Delay: 1}, {Delay: 2}, {Delay: 3}}}

	assert.Equal(t, time.Duration(1), a.Frame(3).Delay)
	assert.Equal(t, time.Duration(3), a.Frame(-1).Delay)
	assert.Equal(t, time.Duration(2), a.Frame(7).Delay)
}

func TestAnimation_Scale(t *testing.T) {
	full := image.Rect(0, 0, 10, 8)
	data := encodeGIF(t, 10, 8, []testFrame{
		{rect: full, index: 1, delay: 3},
		{rect: full, index: 2, delay: 6},
	})
	a, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Same(t, a, a.Scale(100))
	assert.Same(t, a, a.Scale(0))

	half := a.Scale(50)
	assert.Equal(t, 5, half.Width)
	assert.Equal(t, 4, half.Height)
	require.Equal(t, 2, half.Len())
	assert.Equal(t, image.Rect(0, 0, 5, 4), half.Frames[1].Image.Bounds())
	assert.Equal(t, 60*time.Millisecond, half.Frames[1].Delay)
	px := rgbaAt(half.Frames[0].Image, 2, 2)
	assert.Greater(t, px.R, uint8(200))
	assert.Less(t, px.G, uint8(50))
}

func TestAnimation_Release(t *testing.T) {
	a := &Animation{Frames: []Frame{{Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}}}
	a.Release()
	assert.Nil(t, a.Frames)
}

func TestPlaybackDelay(t *testing.T) {
	tests := []struct {
		delay, min, expected time.Duration
	}{
		{0, 0, MinFrameDelay},
		{5 * time.Millisecond, 0, MinFrameDelay},
		{100 * time.Millisecond, 0, 100 * time.Millisecond},
		{10 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond},
		{80 * time.Millisecond, 50 * time.Millisecond, 80 * time.Millisecond},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, PlaybackDelay(test.delay, test.min),
			"PlaybackDelay(%v, %v)", test.delay, test.min)
	}
}
