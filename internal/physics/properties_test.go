package physics

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dpsim/internal/dynamo"
)

func run(s dynamo.State, p dynamo.Params, steps int) []dynamo.State {
	out := make([]dynamo.State, 0, steps)
	for i := 0; i < steps; i++ {
		next, err := Advance(s, p)
		Expect(err).NotTo(HaveOccurred(), "step %d", i)
		out = append(out, next)
		s = next
	}
	return out
}

func maxAbsOmega(states []dynamo.State) float64 {
	m := 0.0
	for _, s := range states {
		m = math.Max(m, math.Max(math.Abs(s.Omega1), math.Abs(s.Omega2)))
	}
	return m
}

var _ = Describe("Advance", func() {
	var p dynamo.Params

	BeforeEach(func() {
		p = dynamo.DefaultParams()
	})

	It("keeps the hanging equilibrium fixed", func() {
		s := dynamo.State{}
		for i := 0; i < 100; i++ {
			next, err := Advance(s, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal(dynamo.State{}))
			s = next
		}
	})

	It("is deterministic", func() {
		s0 := dynamo.Rest(math.Pi / 2)
		a := run(s0, p, 2000)
		b := run(s0, p, 2000)
		Expect(a).To(Equal(b))
	})

	It("keeps the default trajectory finite over a long run", func() {
		states := run(dynamo.Rest(math.Pi/2), p, 1000)
		for _, s := range states {
			Expect(s.IsValid()).To(BeTrue())
		}
	})

	Context("without damping", func() {
		It("bounds the energy error for small swings", func() {
			s0 := dynamo.Rest(0.3)
			e0 := Energy(s0, p)
			swing := e0 - RestEnergy(p)

			for _, s := range run(s0, p, 1000) {
				Expect(math.Abs(Energy(s, p) - e0)).To(BeNumerically("<", 0.3*swing))
			}
		})

		It("does not let the energy run away from the horizontal start", func() {
			s0 := dynamo.Rest(math.Pi / 2)
			e0 := Energy(s0, p)
			scale := -RestEnergy(p)

			for _, s := range run(s0, p, 1000) {
				Expect(math.Abs(Energy(s, p) - e0)).To(BeNumerically("<", scale))
			}
		})
	})

	Context("with damping", func() {
		BeforeEach(func() {
			p.Mu1, p.Mu2 = 0.99, 0.99
		})

		It("drives the velocities toward zero", func() {
			states := run(dynamo.Rest(0.5), p, 3000)
			early := maxAbsOmega(states[:100])
			late := maxAbsOmega(states[len(states)-100:])

			Expect(early).To(BeNumerically(">", 0.005))
			Expect(late).To(BeNumerically("<", 1e-4))
		})

		It("loses energy over time", func() {
			s0 := dynamo.Rest(0.5)
			states := run(s0, p, 3000)
			last := states[len(states)-1]
			Expect(Energy(last, p)).To(BeNumerically("<", Energy(s0, p)))
			Expect(Energy(last, p) - RestEnergy(p)).To(BeNumerically("<", 1e-3))
		})
	})

	DescribeTable("reports overflow instead of producing NaN or Inf",
		func(s dynamo.State) {
			next, err := Advance(s, p)
			Expect(err).To(MatchError(dynamo.ErrNumericalOverflow))
			Expect(next).To(Equal(s))
		},
		Entry("omega1 = 1e300", dynamo.State{Omega1: 1e300}),
		Entry("omega2 = -1e300", dynamo.State{Theta1: 0.1, Omega2: -1e300}),
		Entry("omega1 = 1e160 at horizontal", dynamo.State{Theta1: math.Pi / 2, Theta2: 0, Omega1: 1e160}),
	)
})
