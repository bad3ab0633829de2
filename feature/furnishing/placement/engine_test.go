package placement_test

import (
	"context"
	"errors"

	"room-furnisher/feature/furnishing/catalog"
	"room-furnisher/feature/furnishing/placement"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	setAttr   = "Furniture Set"
	countAttr = "Furniture Count"
)

func mustCatalog(rows [][]string) *catalog.Catalog {
	c, err := catalog.BuildCatalog(rows)
	Expect(err).NotTo(HaveOccurred())
	return c
}

func mustSets(rows [][]string) *catalog.SetTable {
	s, err := catalog.BuildSetTable(rows)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Engine.Run", func() {
	var (
		ctx    context.Context
		model  *fakeModel
		desk   *fakeItem
		chair  *fakeItem
		cat    *catalog.Catalog
		engine *placement.Engine
	)

	BeforeEach(func() {
		ctx = context.Background()
		desk = &fakeItem{family: "Desk", typ: "60x30", active: true}
		chair = &fakeItem{family: "Chair-Task", typ: "Chair-Task"}
		model = &fakeModel{items: []*fakeItem{desk, chair}}
		cat = mustCatalog([][]string{
			{"desk", "Desk", "60x30"},
			{"task chair", "Chair-Task", "Chair-Task"},
		})
		engine = placement.NewEngine(model, placement.Config{}, zap.NewNop())
	})

	Context("with a catalog entry missing", func() {
		It("places the resolvable item and writes the set size", func() {
			cat = mustCatalog([][]string{{"desk", "Desk", "60x30"}})
			sets := mustSets([][]string{{"A", "Office", "desk, task chair"}})
			room := newRoom("101", map[string]string{setAttr: "A", countAttr: ""})
			model.rooms = []*fakeRoom{room}

			result, err := engine.Run(ctx, cat, sets, placement.Options{})
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Placed).To(Equal(1))
			Expect(model.instances).To(HaveLen(1))
			Expect(model.countOf("Desk")).To(Equal(1))
			Expect(room.writes).To(Equal([]attrWrite{{name: countAttr, value: 2}}))
			Expect(result.Locations[0].Missing).To(Equal([]string{"task chair"}))
			Expect(result.Locations[0].Status).To(Equal(placement.StatusPlaced))
		})
	})

	Context("with rooms that carry no usable set code", func() {
		DescribeTable("skips the room without touching it",
			func(attrs map[string]string) {
				sets := mustSets([][]string{{"A", "Office", "desk"}, {"", "Blank", "desk"}})
				room := newRoom("102", attrs)
				room.pointErr = errors.New("unplaced room")
				model.rooms = []*fakeRoom{room}

				result, err := engine.Run(ctx, cat, sets, placement.Options{})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Placed).To(BeZero())
				Expect(model.instances).To(BeEmpty())
				Expect(room.writes).To(BeEmpty())
				Expect(result.Locations[0].Status).To(Equal(placement.StatusSkipped))
			},
			Entry("attribute absent", map[string]string{countAttr: "7"}),
			Entry("attribute empty", map[string]string{setAttr: "", countAttr: "7"}),
			Entry("code matches no set", map[string]string{setAttr: "Z", countAttr: "7"}),
		)

		It("leaves the count parameter at its previous value", func() {
			room := newRoom("103", map[string]string{setAttr: "Z", countAttr: "7"})
			model.rooms = []*fakeRoom{room}

			_, err := engine.Run(ctx, cat, mustSets([][]string{{"A", "Office", "desk"}}), placement.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(room.attrs[countAttr]).To(Equal("7"))
		})
	})

	Context("when two sets share a code", func() {
		It("applies both and keeps the last set's count", func() {
			sets := mustSets([][]string{
				{"A", "Office", "desk, task chair, task chair"},
				{"B", "Classroom", "desk"},
				{"A", "Office Annex", "desk"},
			})
			room := newRoom("104", map[string]string{setAttr: "A", countAttr: ""})
			model.rooms = []*fakeRoom{room}

			result, err := engine.Run(ctx, cat, sets, placement.Options{})
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Placed).To(Equal(4))
			Expect(model.countOf("Desk")).To(Equal(2))
			Expect(model.countOf("Chair-Task")).To(Equal(2))
			Expect(room.writes).To(Equal([]attrWrite{
				{name: countAttr, value: 3},
				{name: countAttr, value: 1},
			}))
			Expect(room.attrs[countAttr]).To(Equal("1"))
			Expect(result.Locations[0].MatchedSets).To(Equal(2))
			Expect(result.Locations[0].Count).To(Equal(1))
		})
	})

	Context("when the room has no count parameter", func() {
		It("places furniture and skips the write", func() {
			room := newRoom("105", map[string]string{setAttr: "A"})
			model.rooms = []*fakeRoom{room}

			result, err := engine.Run(ctx, cat, mustSets([][]string{{"A", "Office", "desk"}}), placement.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Placed).To(Equal(1))
			Expect(room.writes).To(BeEmpty())
			Expect(result.Locations[0].CountSet).To(BeFalse())
		})
	})

	It("places every instance at the room's reference point", func() {
		room := newRoom("106", map[string]string{setAttr: "A"})
		room.point = placement.Point{X: 12.5, Y: -3, Z: 0}
		model.rooms = []*fakeRoom{room}

		_, err := engine.Run(ctx, cat, mustSets([][]string{{"A", "Office", "desk, desk, task chair"}}), placement.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(model.instances).To(HaveLen(3))
		for _, in := range model.instances {
			Expect(in.point).To(Equal(room.point))
		}
	})

	It("activates inactive symbols before placing them", func() {
		model.rooms = []*fakeRoom{newRoom("107", map[string]string{setAttr: "A"})}

		_, err := engine.Run(ctx, cat, mustSets([][]string{{"A", "Office", "task chair, task chair"}}), placement.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(chair.active).To(BeTrue())
		Expect(chair.activations).To(Equal(1))
	})

	It("sums placements across rooms and commits one named unit of work", func() {
		model.rooms = []*fakeRoom{
			newRoom("201", map[string]string{setAttr: "A"}),
			newRoom("202", map[string]string{}),
			newRoom("203", map[string]string{setAttr: "A"}),
		}

		result, err := engine.Run(ctx, cat, mustSets([][]string{{"A", "Office", "desk, task chair"}}), placement.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Placed).To(Equal(4))
		Expect(result.Locations).To(HaveLen(3))
		Expect(model.units).To(Equal([]string{"Move in furniture"}))
		Expect(model.committed).To(Equal(1))
	})

	Context("on a dry run", func() {
		It("reports the placements and abandons the unit of work", func() {
			room := newRoom("301", map[string]string{setAttr: "A", countAttr: "0"})
			model.rooms = []*fakeRoom{room}

			result, err := engine.Run(ctx, cat, mustSets([][]string{{"A", "Office", "desk, task chair"}}), placement.Options{DryRun: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.DryRun).To(BeTrue())
			Expect(result.Placed).To(Equal(2))
			Expect(model.instances).To(BeEmpty())
			Expect(room.attrs[countAttr]).To(Equal("0"))
			Expect(model.committed).To(BeZero())
		})
	})

	Context("when the host fails", func() {
		var sets *catalog.SetTable

		BeforeEach(func() {
			sets = mustSets([][]string{{"A", "Office", "desk, task chair"}})
		})

		It("aborts on instance creation failure and rolls back", func() {
			first := newRoom("401", map[string]string{setAttr: "A", countAttr: ""})
			model.rooms = []*fakeRoom{first}
			model.createErr = errors.New("host refused")

			result, err := engine.Run(ctx, cat, sets, placement.Options{})
			Expect(result).To(BeNil())
			Expect(err).To(MatchError(placement.ErrCreation))
			Expect(model.instances).To(BeEmpty())
			Expect(first.attrs[countAttr]).To(Equal(""))
			Expect(model.committed).To(BeZero())
		})

		It("aborts on activation failure", func() {
			chair.activateErr = errors.New("locked")
			model.rooms = []*fakeRoom{newRoom("402", map[string]string{setAttr: "A"})}

			_, err := engine.Run(ctx, cat, sets, placement.Options{})
			Expect(err).To(MatchError(placement.ErrActivation))
			Expect(model.instances).To(BeEmpty())
		})

		It("aborts when the reference point cannot be read", func() {
			room := newRoom("403", map[string]string{setAttr: "A"})
			room.pointErr = errors.New("no location point")
			model.rooms = []*fakeRoom{room}

			_, err := engine.Run(ctx, cat, sets, placement.Options{})
			Expect(err).To(MatchError(placement.ErrHost))
		})

		It("aborts when rooms cannot be enumerated", func() {
			model.listErr = errors.New("model closed")

			_, err := engine.Run(ctx, cat, sets, placement.Options{})
			Expect(err).To(MatchError(placement.ErrHost))
			Expect(err.Error()).To(ContainSubstring("model closed"))
		})

		It("aborts when a parameter cannot be read", func() {
			room := newRoom("404", nil)
			room.attrErr = errors.New("parameter store offline")
			model.rooms = []*fakeRoom{room}

			_, err := engine.Run(ctx, cat, sets, placement.Options{})
			Expect(err).To(MatchError(placement.ErrHost))
		})
	})

	It("honours configured parameter names", func() {
		engine = placement.NewEngine(model, placement.Config{
			SetAttribute:   "Set Code",
			CountAttribute: "Item Count",
			UnitOfWorkName: "Furnish",
		}, zap.NewNop())
		room := newRoom("501", map[string]string{"Set Code": "A", "Item Count": ""})
		model.rooms = []*fakeRoom{room}

		result, err := engine.Run(ctx, cat, mustSets([][]string{{"A", "Office", "desk"}}), placement.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Placed).To(Equal(1))
		Expect(room.attrs["Item Count"]).To(Equal("1"))
		Expect(model.units).To(Equal([]string{"Furnish"}))
	})
})
