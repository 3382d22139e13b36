package audio

// FakeChannel is an in-memory Channel for headless tests. It records the
// operations applied to it so tests can assert on transition order.
type FakeChannel struct {
	Name    string
	clip    string
	vol     float64
	playing bool
	Ops     []string
}

func NewFakeChannel(name string) *FakeChannel {
	return &FakeChannel{Name: name, vol: 1}
}

func (c *FakeChannel) SetClip(name string) {
	c.clip = name
	c.Ops = append(c.Ops, "clip="+name)
}

func (c *FakeChannel) Clip() string { return c.clip }

func (c *FakeChannel) SetVolume(v float64) { c.vol = v }

func (c *FakeChannel) Volume() float64 { return c.vol }

func (c *FakeChannel) Play() {
	c.playing = true
	c.Ops = append(c.Ops, "play")
}

func (c *FakeChannel) Stop() {
	c.playing = false
	c.Ops = append(c.Ops, "stop")
}

func (c *FakeChannel) Playing() bool { return c.playing }
