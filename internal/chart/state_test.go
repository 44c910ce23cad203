package chart_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/playback"
	"github.com/san-kum/animchart/internal/series"
)

var samples = []series.Sample{
	{X: 0, Y: 0, T: 0},
	{X: 1, Y: 1, T: 1},
	{X: 2, Y: 0, T: 2},
	{X: 3, Y: 2, T: 3},
	{X: 4, Y: -1, T: 4},
}

func newChart() (*chart.Chart, *playback.Manual) {
	src := playback.NewManual(time.Unix(0, 0))
	c := chart.MustNew(samples, "m", "m", "test", chart.WithTimeSource(src))
	return c, src
}

func enter(c *chart.Chart, src *playback.Manual, st chart.State) {
	switch st {
	case chart.Playing:
		c.Start()
		src.Advance(time.Second)
	case chart.Paused:
		c.Start()
		src.Advance(time.Second)
		c.Toggle()
	}
}

var _ = Describe("Chart playback state machine", func() {
	DescribeTable("transitions",
		func(from chart.State, action func(*chart.Chart), to chart.State) {
			c, src := newChart()
			enter(c, src, from)
			Expect(c.State()).To(Equal(from))

			action(c)
			Expect(c.State()).To(Equal(to))
		},
		Entry("stopped start", chart.Stopped, (*chart.Chart).Start, chart.Playing),
		Entry("stopped stop", chart.Stopped, (*chart.Chart).Stop, chart.Stopped),
		Entry("stopped toggle", chart.Stopped, (*chart.Chart).Toggle, chart.Playing),
		Entry("stopped seek", chart.Stopped, func(c *chart.Chart) { c.Seek(2) }, chart.Paused),
		Entry("playing start", chart.Playing, (*chart.Chart).Start, chart.Playing),
		Entry("playing stop", chart.Playing, (*chart.Chart).Stop, chart.Stopped),
		Entry("playing toggle", chart.Playing, (*chart.Chart).Toggle, chart.Paused),
		Entry("playing seek", chart.Playing, func(c *chart.Chart) { c.Seek(2) }, chart.Playing),
		Entry("paused start", chart.Paused, (*chart.Chart).Start, chart.Playing),
		Entry("paused stop", chart.Paused, (*chart.Chart).Stop, chart.Stopped),
		Entry("paused toggle", chart.Paused, (*chart.Chart).Toggle, chart.Playing),
		Entry("paused seek", chart.Paused, func(c *chart.Chart) { c.Seek(2) }, chart.Paused),
	)

	It("stops on natural completion", func() {
		c, src := newChart()
		c.Start()
		src.Advance(10 * time.Second)

		cfg := c.Frame()
		Expect(cfg.Time).To(Equal(4.0))
		Expect(cfg.Points).To(HaveLen(5))
		Expect(c.IsPlaying()).To(BeFalse())
		Expect(c.State()).To(Equal(chart.Stopped))
	})

	It("resets to the start when started after a seek", func() {
		c, _ := newChart()
		c.Seek(3)
		c.Start()

		Expect(c.CurrentTime()).To(BeNumerically("~", playback.MinDelta, 1e-9))
		Expect(c.Frame().Points).To(HaveLen(1))
	})

	It("keeps the position continuous across pause and resume", func() {
		c, src := newChart()
		c.Start()
		src.Advance(1500 * time.Millisecond)

		c.Toggle()
		before := c.CurrentTime()
		src.Advance(30 * time.Second)
		c.Toggle()

		Expect(c.CurrentTime()).To(BeNumerically("~", before, 1e-9))
	})

	It("scales elapsed time by the speed", func() {
		src := playback.NewManual(time.Unix(0, 0))
		c := chart.MustNew(samples, "m", "m", "fast",
			chart.WithTimeSource(src),
			chart.WithSpeed(2.0),
		)
		c.Start()
		src.Advance(500 * time.Millisecond)

		Expect(c.Speed()).To(Equal(2.0))
		Expect(c.CurrentTime()).To(BeNumerically("~", 1.0+playback.MinDelta, 1e-9))
	})

	It("starts paused when built with an initial time", func() {
		src := playback.NewManual(time.Unix(0, 0))
		c := chart.MustNew(samples, "m", "m", "seeked",
			chart.WithTimeSource(src),
			chart.WithTime(2.5),
		)

		Expect(c.State()).To(Equal(chart.Paused))
		cfg := c.Frame()
		Expect(cfg.Points).To(HaveLen(3))
		Expect(cfg.XRange).To(Equal(series.Range{Min: 0, Max: 2}))
	})
})
