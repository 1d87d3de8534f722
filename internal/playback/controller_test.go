package playback_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/step"
)

const speed = 100 * time.Millisecond

func sequence(n int) step.Sequence {
	seq := make(step.Sequence, n)
	for i := range seq {
		seq[i] = step.SortStep{Base: step.Base{Array: []int{i}, Action: "s"}, Pivot: step.NoIndex}
	}
	return seq
}

var _ = Describe("Controller", func() {
	var (
		clock   *manualClock
		ctl     *playback.Controller
		mu      sync.Mutex
		changes []playback.Snapshot
	)

	BeforeEach(func() {
		clock = &manualClock{}
		changes = nil
		ctl = playback.New(
			playback.WithClock(clock),
			playback.WithSpeed(speed),
			playback.WithOnChange(func(s playback.Snapshot) {
				mu.Lock()
				changes = append(changes, s)
				mu.Unlock()
			}),
		)
	})

	AfterEach(func() {
		ctl.Close()
	})

	Context("without a sequence", func() {
		It("is idle and ignores every control", func() {
			ctl.Play()
			ctl.StepForward()
			ctl.JumpToEnd()
			ctl.Pause()

			s := ctl.Snapshot()
			Expect(s.State).To(Equal(playback.Idle))
			Expect(s.Step).To(BeNil())
			Expect(s.Playing).To(BeFalse())
			Expect(clock.Pending()).To(BeZero())
		})

		It("treats an empty sequence as idle", func() {
			ctl.Load(step.Sequence{})
			ctl.Play()
			Expect(ctl.Snapshot().State).To(Equal(playback.Idle))
			Expect(clock.Pending()).To(BeZero())
		})
	})

	Context("with a loaded sequence", func() {
		BeforeEach(func() {
			ctl.Load(sequence(4))
		})

		It("starts ready at index 0", func() {
			s := ctl.Snapshot()
			Expect(s.State).To(Equal(playback.Ready))
			Expect(s.Index).To(Equal(0))
			Expect(s.Len).To(Equal(4))
			Expect(s.Complete).To(BeFalse())
		})

		It("advances one step per tick and stops itself at the end", func() {
			ctl.Play()
			Expect(ctl.Snapshot().State).To(Equal(playback.Playing))

			clock.Advance(speed)
			Expect(ctl.Snapshot().Index).To(Equal(1))
			clock.Advance(2 * speed)
			Expect(ctl.Snapshot().Index).To(Equal(3))
			Expect(ctl.Snapshot().Playing).To(BeTrue())

			clock.Advance(speed)
			s := ctl.Snapshot()
			Expect(s.Index).To(Equal(3))
			Expect(s.Playing).To(BeFalse())
			Expect(s.State).To(Equal(playback.Ready))
			Expect(s.Complete).To(BeTrue())
			Expect(clock.Pending()).To(BeZero())
		})

		It("keeps at most one timer outstanding", func() {
			ctl.Play()
			ctl.Play()
			Expect(clock.Pending()).To(Equal(1))
			clock.Advance(speed)
			Expect(clock.Pending()).To(Equal(1))
		})

		It("stops advancing after pause", func() {
			ctl.Play()
			clock.Advance(speed)
			ctl.Pause()

			clock.Advance(10 * speed)
			Expect(ctl.Snapshot().Index).To(Equal(1))
			Expect(clock.Pending()).To(BeZero())
		})

		It("discards a tick that fires after it was cancelled", func() {
			ctl.Play()
			ctl.Pause()
			Expect(clock.FireStale()).To(Equal(1))
			Expect(ctl.Snapshot().Index).To(Equal(0))
		})

		It("restarts from the beginning when played from the last step", func() {
			ctl.JumpToEnd()
			Expect(ctl.Snapshot().Complete).To(BeTrue())

			ctl.Play()
			Expect(ctl.Snapshot().Index).To(Equal(0))
			clock.Advance(speed)
			Expect(ctl.Snapshot().Index).To(Equal(1))
		})

		It("clamps manual stepping to the sequence", func() {
			ctl.StepBack()
			Expect(ctl.Snapshot().Index).To(Equal(0))

			for i := 0; i < 10; i++ {
				ctl.StepForward()
			}
			Expect(ctl.Snapshot().Index).To(Equal(3))

			ctl.JumpToStart()
			Expect(ctl.Snapshot().Index).To(Equal(0))
		})

		It("ignores manual stepping while playing", func() {
			ctl.Play()
			ctl.StepForward()
			ctl.JumpToEnd()
			Expect(ctl.Snapshot().Index).To(Equal(0))
		})

		It("toggles between playing and ready", func() {
			ctl.Toggle()
			Expect(ctl.Snapshot().Playing).To(BeTrue())
			ctl.Toggle()
			Expect(ctl.Snapshot().Playing).To(BeFalse())
		})

		It("applies a new speed from the next scheduled tick", func() {
			ctl.Play()
			ctl.SetSpeed(500 * time.Millisecond)

			clock.Advance(speed)
			Expect(ctl.Snapshot().Index).To(Equal(1))

			clock.Advance(speed)
			Expect(ctl.Snapshot().Index).To(Equal(1))
			clock.Advance(400 * time.Millisecond)
			Expect(ctl.Snapshot().Index).To(Equal(2))
		})

		It("notifies listeners of every change", func() {
			before := len(changes)
			ctl.StepForward()
			ctl.StepBack()
			ctl.StepBack()

			mu.Lock()
			defer mu.Unlock()
			Expect(changes).To(HaveLen(before + 2))
			Expect(changes[len(changes)-1].Index).To(Equal(0))
		})
	})

	Context("reloading", func() {
		It("cancels the running timer and rewinds", func() {
			ctl.Load(sequence(5))
			ctl.Play()
			clock.Advance(2 * speed)
			Expect(ctl.Snapshot().Index).To(Equal(2))

			ctl.Load(sequence(3))
			s := ctl.Snapshot()
			Expect(s.Index).To(Equal(0))
			Expect(s.Len).To(Equal(3))
			Expect(s.Playing).To(BeFalse())

			Expect(clock.FireStale()).To(BeNumerically(">=", 1))
			clock.Advance(10 * speed)
			Expect(ctl.Snapshot().Index).To(Equal(0))
		})

		It("plays a generated sequence to its terminal step", func() {
			seq, err := algo.Bubble([]int{5, 3, 8, 1})
			Expect(err).NotTo(HaveOccurred())

			ctl.Load(seq)
			ctl.Play()
			clock.Advance(time.Duration(len(seq)+1) * speed)

			s := ctl.Snapshot()
			Expect(s.Complete).To(BeTrue())
			Expect(s.Playing).To(BeFalse())
			Expect(s.Step.Common().Array).To(Equal([]int{1, 3, 5, 8}))
		})
	})

	Context("speed", func() {
		It("clamps to the configured bounds", func() {
			c := playback.New(
				playback.WithClock(clock),
				playback.WithSpeedBounds(10*time.Millisecond, 2*time.Second),
				playback.WithSpeed(time.Millisecond),
			)
			Expect(c.Snapshot().Speed).To(Equal(10 * time.Millisecond))

			c.SetSpeed(time.Hour)
			Expect(c.Snapshot().Speed).To(Equal(2 * time.Second))
		})
	})

	Context("after Close", func() {
		It("refuses to load or play", func() {
			ctl.Close()
			ctl.Load(sequence(2))
			ctl.Play()
			Expect(ctl.Snapshot().State).To(Equal(playback.Idle))
			Expect(clock.Pending()).To(BeZero())
		})
	})
})
