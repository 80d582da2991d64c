package mjpegencoder

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
)

// buildMP4 creates an MP4 container from the buffered JPEG samples.
func (e *Encoder) buildMP4() ([]byte, error) {
	if len(e.frames) == 0 {
		return nil, fmt.Errorf("no frames to encode")
	}

	timescale := uint32(e.fps * 1000)
	trackID := uint32(1)

	// Create initialization segment
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(timescale, "video", "en")

	trak := init.Moov.Trak

	// Create jpeg sample entry; MJPEG needs no codec configuration box.
	entry := mp4.CreateVisualSampleEntryBox("jpeg", uint16(e.width), uint16(e.height), nil)
	trak.Mdia.Minf.Stbl.Stsd.AddChild(entry)

	// Set track header dimensions
	trak.Tkhd.Width = mp4.Fixed32(e.width << 16)
	trak.Tkhd.Height = mp4.Fixed32(e.height << 16)

	// Create fragment
	frag, err := mp4.CreateFragment(1, trackID)
	if err != nil {
		return nil, fmt.Errorf("create fragment: %w", err)
	}

	// Every sample is a keyframe with a constant frame duration.
	dur := uint32(timescale) / uint32(e.fps)
	for _, f := range e.frames {
		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags: mp4.SyncSampleFlags,
				Size:  uint32(len(f.data)),
				Dur:   dur,
			},
			DecodeTime: uint64(f.index) * uint64(dur),
			Data:       f.data,
		})
	}

	// Write to buffer
	var buf bytes.Buffer

	// Write ftyp
	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "mp41"})
	if err := ftyp.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode ftyp: %w", err)
	}

	// Write moov (from init segment)
	if err := init.Moov.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode moov: %w", err)
	}

	// Write fragment (moof + mdat)
	if err := frag.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}

	return buf.Bytes(), nil
}
