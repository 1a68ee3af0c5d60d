package glboot

// Program owns a linked program object. It lives until Delete is called.
type Program struct {
	d  Device
	id uint32
}

// ID returns the driver identifier (0 once deleted).
func (p Program) ID() uint32 { return p.id }

// Use installs the program as part of current rendering state.
func (p Program) Use() {
	p.d.UseProgram(p.id)
}

// Delete releases the program. Deleting a zero handle is a no-op.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.d.DeleteProgram(p.id)
	p.id = 0
}

// LinkProgram attaches both compiled stages to a new program and links it.
// Both shaders are deleted whether or not linking succeeds; on failure the
// program is deleted as well and a *LinkError is returned.
func LinkProgram(d Device, vertex, fragment *Shader) (Program, error) {
	defer vertex.Delete()
	defer fragment.Delete()

	id := d.CreateProgram()
	if id == 0 {
		return Program{}, ErrHandleUnavailable
	}
	d.AttachShader(id, vertex.ID())
	d.AttachShader(id, fragment.ID())
	d.LinkProgram(id)

	if d.ProgramParam(id, LinkStatus) == 0 {
		n := d.ProgramParam(id, ProgramInfoLogLength)
		log := trimLog(d.ProgramInfoLog(id, n))
		d.DeleteProgram(id)
		return Program{}, &LinkError{Log: log}
	}

	Logger().Debug("program linked", "id", id)
	return Program{d: d, id: id}, nil
}
