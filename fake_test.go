package glboot_test

import (
	"fmt"

	"github.com/go-theft-auto/glboot"
)

// fakeShader records the state of one shader object.
type fakeShader struct {
	stage    glboot.Stage
	source   string
	compiled bool
	deleted  bool
}

// fakeProgram records the state of one program object.
type fakeProgram struct {
	attached []uint32
	linked   bool
	deleted  bool
}

type attribCall struct {
	index      uint32
	size       int32
	typ        glboot.AttribType
	normalized bool
	stride     int32
	offset     uintptr
}

// fakeDevice is a recording glboot.Device.
type fakeDevice struct {
	nextID uint32
	zeroID map[string]bool // Gen*/Create* calls that return 0

	compileLog map[glboot.Stage]string // stages that fail to compile
	linkLog    *string                 // non-nil makes linking fail

	calls []string

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	vaos     map[uint32]bool // live objects
	buffers  map[uint32]bool

	boundVAO    uint32
	boundBuffer uint32
	usedProgram uint32
	bufferData  []float32
	usage       glboot.BufferUsage
	attribs     []attribCall
	enabled     []uint32
	vaoAtAttrib uint32

	clearColor [4]float32
	clears     int
	errors     []glboot.ErrorCode
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		zeroID:     make(map[string]bool),
		compileLog: make(map[glboot.Stage]string),
		shaders:    make(map[uint32]*fakeShader),
		programs:   make(map[uint32]*fakeProgram),
		vaos:       make(map[uint32]bool),
		buffers:    make(map[uint32]bool),
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) alloc(kind string) uint32 {
	if d.zeroID[kind] {
		return 0
	}
	d.nextID++
	return d.nextID
}

// liveObjects counts objects created and not yet deleted.
func (d *fakeDevice) liveObjects() int {
	n := 0
	for _, s := range d.shaders {
		if !s.deleted {
			n++
		}
	}
	for _, p := range d.programs {
		if !p.deleted {
			n++
		}
	}
	for _, live := range d.vaos {
		if live {
			n++
		}
	}
	for _, live := range d.buffers {
		if live {
			n++
		}
	}
	return n
}

func (d *fakeDevice) called(call string) bool {
	for _, c := range d.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (d *fakeDevice) GenVertexArray() uint32 {
	id := d.alloc("vao")
	d.record("GenVertexArray")
	if id != 0 {
		d.vaos[id] = true
	}
	return id
}

func (d *fakeDevice) BindVertexArray(id uint32) {
	d.record("BindVertexArray %d", id)
	d.boundVAO = id
}

func (d *fakeDevice) DeleteVertexArray(id uint32) {
	d.record("DeleteVertexArray %d", id)
	d.vaos[id] = false
}

func (d *fakeDevice) GenBuffer() uint32 {
	id := d.alloc("buffer")
	d.record("GenBuffer")
	if id != 0 {
		d.buffers[id] = true
	}
	return id
}

func (d *fakeDevice) BindBuffer(_ glboot.BufferTarget, id uint32) {
	d.record("BindBuffer %d", id)
	d.boundBuffer = id
}

func (d *fakeDevice) BufferData(_ glboot.BufferTarget, data []float32, usage glboot.BufferUsage) {
	d.record("BufferData %d", d.boundBuffer)
	d.bufferData = append([]float32(nil), data...)
	d.usage = usage
}

func (d *fakeDevice) DeleteBuffer(id uint32) {
	d.record("DeleteBuffer %d", id)
	d.buffers[id] = false
}

func (d *fakeDevice) VertexAttribPointer(index uint32, size int32, typ glboot.AttribType, normalized bool, stride int32, offset uintptr) {
	d.record("VertexAttribPointer %d", index)
	d.attribs = append(d.attribs, attribCall{index, size, typ, normalized, stride, offset})
	d.vaoAtAttrib = d.boundVAO
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray %d", index)
	d.enabled = append(d.enabled, index)
}

func (d *fakeDevice) CreateShader(stage glboot.Stage) uint32 {
	id := d.alloc("shader")
	d.record("CreateShader %s", stage)
	if id != 0 {
		d.shaders[id] = &fakeShader{stage: stage}
	}
	return id
}

func (d *fakeDevice) ShaderSource(id uint32, source string) {
	d.record("ShaderSource %d", id)
	d.shaders[id].source = source
}

func (d *fakeDevice) CompileShader(id uint32) {
	d.record("CompileShader %d", id)
	s := d.shaders[id]
	_, fail := d.compileLog[s.stage]
	s.compiled = !fail
}

func (d *fakeDevice) ShaderParam(id uint32, param glboot.ShaderParam) int32 {
	d.record("ShaderParam %d %d", id, param)
	s, ok := d.shaders[id]
	if !ok {
		panic(fmt.Sprintf("ShaderParam on non-shader %d", id))
	}
	switch param {
	case glboot.CompileStatus:
		if s.compiled {
			return 1
		}
		return 0
	case glboot.ShaderInfoLogLength:
		if log := d.compileLog[s.stage]; log != "" {
			return int32(len(log) + 1)
		}
	}
	return 0
}

func (d *fakeDevice) ShaderInfoLog(id uint32, length int32) string {
	d.record("ShaderInfoLog %d %d", id, length)
	log := d.compileLog[d.shaders[id].stage]
	if int(length) < len(log) {
		return log[:length]
	}
	return log
}

func (d *fakeDevice) DeleteShader(id uint32) {
	d.record("DeleteShader %d", id)
	d.shaders[id].deleted = true
}

func (d *fakeDevice) CreateProgram() uint32 {
	id := d.alloc("program")
	d.record("CreateProgram")
	if id != 0 {
		d.programs[id] = &fakeProgram{}
	}
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.record("AttachShader %d %d", program, shader)
	d.programs[program].attached = append(d.programs[program].attached, shader)
}

func (d *fakeDevice) LinkProgram(id uint32) {
	d.record("LinkProgram %d", id)
	d.programs[id].linked = d.linkLog == nil
}

func (d *fakeDevice) ProgramParam(id uint32, param glboot.ProgramParam) int32 {
	d.record("ProgramParam %d %d", id, param)
	p, ok := d.programs[id]
	if !ok {
		panic(fmt.Sprintf("ProgramParam on non-program %d", id))
	}
	switch param {
	case glboot.LinkStatus:
		if p.linked {
			return 1
		}
		return 0
	case glboot.ProgramInfoLogLength:
		if d.linkLog != nil && *d.linkLog != "" {
			return int32(len(*d.linkLog) + 1)
		}
	}
	return 0
}

func (d *fakeDevice) ProgramInfoLog(id uint32, length int32) string {
	d.record("ProgramInfoLog %d %d", id, length)
	if d.linkLog == nil {
		return ""
	}
	log := *d.linkLog
	if int(length) < len(log) {
		return log[:length]
	}
	return log
}

func (d *fakeDevice) UseProgram(id uint32) {
	d.record("UseProgram %d", id)
	d.usedProgram = id
}

func (d *fakeDevice) DeleteProgram(id uint32) {
	d.record("DeleteProgram %d", id)
	d.programs[id].deleted = true
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) {
	d.clearColor = [4]float32{r, g, b, a}
}

func (d *fakeDevice) Clear(mask glboot.ClearMask) {
	if mask&glboot.ColorBufferBit != 0 {
		d.clears++
	}
}

func (d *fakeDevice) Error() glboot.ErrorCode {
	if len(d.errors) == 0 {
		return glboot.NoError
	}
	code := d.errors[0]
	d.errors = d.errors[1:]
	return code
}

// fakeWindow is a scripted glboot.Window. Each PollEvents call returns the
// next batch of events; once the script runs out it returns none.
type fakeWindow struct {
	closed  bool
	swaps   int
	polls   int
	batches [][]glboot.Event
}

func (w *fakeWindow) ShouldClose() bool         { return w.closed }
func (w *fakeWindow) SetShouldClose(value bool) { w.closed = value }
func (w *fakeWindow) SwapBuffers()              { w.swaps++ }

func (w *fakeWindow) PollEvents() []glboot.Event {
	w.polls++
	if len(w.batches) == 0 {
		return nil
	}
	batch := w.batches[0]
	w.batches = w.batches[1:]
	return batch
}

func escapePress() glboot.Event {
	return glboot.Event{Kind: glboot.KeyEvent, Key: glboot.KeyEscape, Action: glboot.Press}
}

var (
	_ glboot.Device = (*fakeDevice)(nil)
	_ glboot.Window = (*fakeWindow)(nil)
)
