package sim_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

type recorder struct {
	frames []sim.Frame
}

func (r *recorder) Present(f sim.Frame) { r.frames = append(r.frames, f) }
func (r *recorder) OnFrame(f sim.Frame) { r.frames = append(r.frames, f) }

var _ = Describe("Driver", func() {
	var (
		start     time.Time
		clock     *sim.ManualClock
		scene     *sim.Scene
		presenter *recorder
		driver    *sim.Driver
		bounds    = physics.Bounds{W: 800, H: 600}
	)

	BeforeEach(func() {
		start = time.Unix(0, 0)
		clock = sim.NewManualClock(start)
		scene = sim.DefaultScene()
		presenter = &recorder{}
		driver = sim.New(scene, clock, sim.FixedBounds(bounds), presenter)
	})

	It("does not move the ball on the first frame", func() {
		f := driver.Frame()
		Expect(f.Dt).To(BeZero())
		Expect(f.Ball.X).To(Equal(160.0))
		Expect(f.Ball.Y).To(Equal(120.0))
		Expect(presenter.frames).To(HaveLen(1))
	})

	It("steps the scene by the elapsed time", func() {
		driver.Frame()
		clock.Advance(16 * time.Millisecond)
		f := driver.Frame()

		Expect(f.Dt).To(BeNumerically("~", 0.016, 1e-9))
		Expect(scene.Ball.X).To(BeNumerically(">", 160))
		Expect(f.Time).To(BeNumerically("~", 0.016, 1e-9))
		Expect(f.Bounds).To(Equal(bounds))
	})

	It("clamps long gaps to the max dt", func() {
		driver.Frame()
		clock.Advance(3 * time.Second)
		f := driver.Frame()
		Expect(f.Dt).To(Equal(sim.DefaultMaxDt))
	})

	It("honours a custom max dt", func() {
		driver.SetMaxDt(0.01)
		driver.Frame()
		clock.Advance(time.Second)
		Expect(driver.Frame().Dt).To(Equal(0.01))
	})

	Context("when paused", func() {
		It("keeps presenting without stepping", func() {
			driver.Frame()
			scene.TogglePause()
			before := scene.Ball

			for i := 0; i < 5; i++ {
				clock.Advance(16 * time.Millisecond)
				f := driver.Frame()
				Expect(f.Paused).To(BeTrue())
				Expect(f.Dt).To(BeZero())
			}

			Expect(scene.Ball).To(Equal(before))
			Expect(presenter.frames).To(HaveLen(6))
			Expect(driver.SimTime()).To(BeZero())
		})

		It("resumes without a catch-up step", func() {
			driver.Frame()
			scene.TogglePause()
			clock.Advance(16 * time.Millisecond)
			driver.Frame()
			clock.Advance(16 * time.Millisecond)
			driver.Frame()

			scene.TogglePause()
			clock.Advance(16 * time.Millisecond)
			f := driver.Frame()
			Expect(f.Dt).To(BeNumerically("~", 0.016, 1e-9))
		})
	})

	It("notifies observers before presenting", func() {
		obs := &recorder{}
		driver.AddObserver(obs)
		driver.Frame()
		clock.Advance(10 * time.Millisecond)
		driver.Frame()

		Expect(obs.frames).To(HaveLen(2))
		Expect(obs.frames[1].Index).To(Equal(1))
	})

	It("keeps the ball inside the viewport over a long run", func() {
		for i := 0; i < 2000; i++ {
			clock.Advance(16 * time.Millisecond)
			f := driver.Frame()
			Expect(f.Ball.X).To(BeNumerically(">=", f.Ball.R))
			Expect(f.Ball.X).To(BeNumerically("<=", bounds.W-f.Ball.R))
			Expect(f.Ball.Y).To(BeNumerically(">=", f.Ball.R))
			Expect(f.Ball.Y).To(BeNumerically("<=", bounds.H-f.Ball.R))
		}
	})

	It("picks up resized bounds on the next frame", func() {
		size := physics.Bounds{W: 800, H: 600}
		driver = sim.New(scene, clock, sim.BoundsFunc(func() physics.Bounds { return size }), presenter)
		driver.Frame()

		size = physics.Bounds{W: 300, H: 200}
		clock.Advance(16 * time.Millisecond)
		f := driver.Frame()

		Expect(f.Bounds).To(Equal(size))
		Expect(f.Ball.X).To(BeNumerically("<=", 300-f.Ball.R))
		Expect(f.Ball.Y).To(BeNumerically("<=", 200-f.Ball.R))
	})

	Describe("Run", func() {
		It("runs one frame per tick until the channel closes", func() {
			ticks := make(chan time.Time, 4)
			for i := 0; i < 4; i++ {
				ticks <- start.Add(time.Duration(i) * 10 * time.Millisecond)
			}
			close(ticks)

			Expect(driver.Run(context.Background(), ticks)).To(Succeed())
			Expect(presenter.frames).To(HaveLen(4))
			Expect(driver.SimTime()).To(BeNumerically("~", 0.03, 1e-9))
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := driver.Run(ctx, make(chan time.Time))
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
