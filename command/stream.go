// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

// Stream is the read-only, borrowed input the compositor core consumes: a
// contiguous command byte buffer plus a parallel offsets table (spec.md
// §3's "Auxiliary inputs"), alongside the out-of-band blob pools that stand
// in for the spec's raw device pointers (d_seg, d_src, d_src0/d_src1).
//
// Go has no raw pointers into caller memory the way the CUDA kernel's
// `float*`/`uint8_t*` command fields do; ByteBlobs/FloatBlobs play the same
// role as the PathRef/BrushRef/ImageRef indices into a resource pool seen in
// production command-recording designs — a command stores a small integer
// index instead of an address, and Stream resolves it.
//
// A Stream is never copied or retained by the compositor past one Launch
// call, matching spec.md §5's lifetime contract.
type Stream struct {
	Data    []byte
	Offsets []int32

	ByteBlobs  [][]byte
	FloatBlobs [][]float32

	TextLocations    []TextLocation
	LineLocationBase []int32

	Glyphs Atlas
}

// NumCommands returns the number of commands in the stream.
func (s *Stream) NumCommands() int { return len(s.Offsets) }

// Command decodes the i-th command. It panics if i is out of range or the
// stream is malformed — per spec.md §7, the core does not validate its
// input buffers, the builder is trusted.
func (s *Stream) Command(i int) Command {
	return decode(s.Data, s.Offsets[i], s.ByteBlobs, s.FloatBlobs)
}

// TextRange returns the [begin, end) slice of s.TextLocations for the
// iLocation-th text command, as given by LineLocationBase.
func (s *Stream) TextRange(iLocation int32) []TextLocation {
	begin := s.LineLocationBase[iLocation]
	end := s.LineLocationBase[iLocation+1]
	return s.TextLocations[begin:end]
}
