package driver

// CallKind identifies a recorded driver call.
type CallKind uint8

const (
	CallCreateSampler CallKind = iota
	CallDeleteSampler
	CallSamplerTextureHandle
	CallTextureHandle
	CallMakeHandleResident
	CallMakeHandleNonResident
)

// Call is one recorded driver call. Only the fields that apply to the
// recorded kind are set.
type Call struct {
	Kind    CallKind
	Desc    SamplerDescriptor
	Sampler SamplerID
	Texture TextureID
	Handle  BindlessHandle
}

// Trace is a Driver that records every call made to it. When Next is set,
// calls are forwarded and the wrapped driver's ids are recorded; otherwise
// Trace mints deterministic ids itself (samplers from 1, handles from 1).
//
// The zero value is ready to use. Trace is the fixture the lifecycle tests
// are written against, and doubles as a call logger when wrapped around a
// real driver.
type Trace struct {
	Next Driver

	// FailSamplers makes CreateSampler return zero, simulating a driver
	// that rejects sampler state creation.
	FailSamplers bool

	// FailHandles makes handle minting return zero, simulating a driver
	// without bindless support.
	FailHandles bool

	Calls []Call

	lastSampler SamplerID
	lastHandle  BindlessHandle
}

var _ Driver = (*Trace)(nil)

func (t *Trace) CreateSampler(desc SamplerDescriptor) SamplerID {
	var id SamplerID
	switch {
	case t.FailSamplers:
	case t.Next != nil:
		id = t.Next.CreateSampler(desc)
	default:
		t.lastSampler++
		id = t.lastSampler
	}

	t.Calls = append(t.Calls, Call{Kind: CallCreateSampler, Desc: desc, Sampler: id})

	return id
}

func (t *Trace) DeleteSampler(id SamplerID) {
	if t.Next != nil {
		t.Next.DeleteSampler(id)
	}

	t.Calls = append(t.Calls, Call{Kind: CallDeleteSampler, Sampler: id})
}

func (t *Trace) SamplerTextureHandle(texture TextureID, sampler SamplerID) BindlessHandle {
	h := t.mintHandle(func(next Driver) BindlessHandle {
		return next.SamplerTextureHandle(texture, sampler)
	})

	t.Calls = append(t.Calls, Call{
		Kind:    CallSamplerTextureHandle,
		Texture: texture,
		Sampler: sampler,
		Handle:  h,
	})

	return h
}

func (t *Trace) TextureHandle(texture TextureID) BindlessHandle {
	h := t.mintHandle(func(next Driver) BindlessHandle {
		return next.TextureHandle(texture)
	})

	t.Calls = append(t.Calls, Call{Kind: CallTextureHandle, Texture: texture, Handle: h})

	return h
}

func (t *Trace) MakeHandleResident(h BindlessHandle) {
	if t.Next != nil {
		t.Next.MakeHandleResident(h)
	}

	t.Calls = append(t.Calls, Call{Kind: CallMakeHandleResident, Handle: h})
}

func (t *Trace) MakeHandleNonResident(h BindlessHandle) {
	if t.Next != nil {
		t.Next.MakeHandleNonResident(h)
	}

	t.Calls = append(t.Calls, Call{Kind: CallMakeHandleNonResident, Handle: h})
}

func (t *Trace) mintHandle(forward func(Driver) BindlessHandle) BindlessHandle {
	switch {
	case t.FailHandles:
		return 0
	case t.Next != nil:
		return forward(t.Next)
	default:
		t.lastHandle++
		return t.lastHandle
	}
}

// CallsOf returns the recorded calls of the given kind, in call order.
func (t *Trace) CallsOf(kind CallKind) []Call {
	var calls []Call
	for _, c := range t.Calls {
		if c.Kind == kind {
			calls = append(calls, c)
		}
	}

	return calls
}

// Reset discards the recorded calls but keeps the id counters, so handles
// minted after a Reset stay distinct from earlier ones.
func (t *Trace) Reset() {
	t.Calls = nil
}
