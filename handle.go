package glboot

// VertexArray owns a vertex array object.
type VertexArray struct {
	d  Device
	id uint32
}

// NewVertexArray asks the device for one vertex array object.
// ok is false if and only if the device returned a zero identifier.
func NewVertexArray(d Device) (vao VertexArray, ok bool) {
	id := d.GenVertexArray()
	if id == 0 {
		return VertexArray{}, false
	}
	return VertexArray{d: d, id: id}, true
}

// ID returns the driver identifier (0 once deleted).
func (v VertexArray) ID() uint32 { return v.id }

// Bind makes the vertex array current.
func (v VertexArray) Bind() {
	v.d.BindVertexArray(v.id)
}

// Delete releases the vertex array. Deleting a zero handle is a no-op.
func (v *VertexArray) Delete() {
	if v.id == 0 {
		return
	}
	v.d.DeleteVertexArray(v.id)
	v.id = 0
}

// UnbindVertexArray clears the current vertex array binding.
func UnbindVertexArray(d Device) {
	d.BindVertexArray(0)
}

// Buffer owns a buffer object bound to a fixed target.
type Buffer struct {
	d      Device
	id     uint32
	target BufferTarget
}

// NewBuffer asks the device for one buffer object.
// ok is false if and only if the device returned a zero identifier.
func NewBuffer(d Device, target BufferTarget) (buf Buffer, ok bool) {
	id := d.GenBuffer()
	if id == 0 {
		return Buffer{}, false
	}
	return Buffer{d: d, id: id, target: target}, true
}

// ID returns the driver identifier (0 once deleted).
func (b Buffer) ID() uint32 { return b.id }

// Bind binds the buffer to its target.
func (b Buffer) Bind() {
	b.d.BindBuffer(b.target, b.id)
}

// Upload replaces the buffer's data store. The buffer must be bound.
func (b Buffer) Upload(data []float32, usage BufferUsage) {
	b.d.BufferData(b.target, data, usage)
}

// Delete releases the buffer. Deleting a zero handle is a no-op.
func (b *Buffer) Delete() {
	if b.id == 0 {
		return
	}
	b.d.DeleteBuffer(b.id)
	b.id = 0
}

// UnbindBuffer clears the binding of target.
func UnbindBuffer(d Device, target BufferTarget) {
	d.BindBuffer(target, 0)
}
