package catalog

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/linku/unime/core"
)

// MUS serializers for catalog records. Field order is the wire format;
// changing it invalidates existing stores.
var (
	IDMUS      mus.Serializer[core.ID]      = idMUS{}
	ProgramMUS mus.Serializer[core.Program] = programMUS{}

	stringSliceMUS = ord.NewSliceSer[string](ord.String)
)

type idMUS struct{}

func (idMUS) Marshal(id core.ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (core.ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return core.ID(v), n, err
}

func (idMUS) Size(id core.ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type programMUS struct{}

func (programMUS) Marshal(p core.Program, bs []byte) (n int) {
	n = ord.String.Marshal(p.Uni, bs)
	n += ord.String.Marshal(p.Name, bs[n:])

	n += stringSliceMUS.Marshal(p.Academic.Interests, bs[n:])
	n += stringSliceMUS.Marshal(p.Academic.LikedCourses, bs[n:])
	n += stringSliceMUS.Marshal(p.Academic.AltToEngineering, bs[n:])
	for _, v := range academicTraits(&p.Academic) {
		n += varint.Int.Marshal(v, bs[n:])
	}

	n += ord.String.Marshal(p.Campus.ClassSizeBin, bs[n:])
	n += ord.String.Marshal(p.Campus.Setting, bs[n:])
	n += stringSliceMUS.Marshal(p.Campus.HousingStyles, bs[n:])
	n += ord.String.Marshal(p.Campus.CampusSize, bs[n:])

	n += varint.Int.Marshal(p.Social.NightScene, bs[n:])
	n += stringSliceMUS.Marshal(p.Social.Sports, bs[n:])
	n += stringSliceMUS.Marshal(p.Social.Clubs, bs[n:])
	n += varint.Int.Marshal(p.Social.CulturalEventFreq, bs[n:])
	return n
}

func (programMUS) Unmarshal(bs []byte) (p core.Program, n int, err error) {
	var c int
	if p.Uni, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if p.Name, c, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c

	if p.Academic.Interests, c, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	if p.Academic.LikedCourses, c, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	if p.Academic.AltToEngineering, c, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	traits := []*int{
		&p.Academic.LearningStyle,
		&p.Academic.FirstYearSpecialization,
		&p.Academic.CoopImportance,
		&p.Academic.ResearchImportance,
		&p.Academic.CreativityOrientation,
		&p.Academic.CareerCertainty,
		&p.Academic.MathEnjoyment,
		&p.Academic.CollaborationPreference,
	}
	for _, trait := range traits {
		if *trait, c, err = varint.Int.Unmarshal(bs[n:]); err != nil {
			return
		}
		n += c
	}

	if p.Campus.ClassSizeBin, c, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	if p.Campus.Setting, c, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	if p.Campus.HousingStyles, c, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	if p.Campus.CampusSize, c, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c

	if p.Social.NightScene, c, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	if p.Social.Sports, c, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	if p.Social.Clubs, c, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	if p.Social.CulturalEventFreq, c, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += c
	return
}

func (programMUS) Size(p core.Program) (size int) {
	size = ord.String.Size(p.Uni)
	size += ord.String.Size(p.Name)

	size += stringSliceMUS.Size(p.Academic.Interests)
	size += stringSliceMUS.Size(p.Academic.LikedCourses)
	size += stringSliceMUS.Size(p.Academic.AltToEngineering)
	for _, v := range academicTraits(&p.Academic) {
		size += varint.Int.Size(v)
	}

	size += ord.String.Size(p.Campus.ClassSizeBin)
	size += ord.String.Size(p.Campus.Setting)
	size += stringSliceMUS.Size(p.Campus.HousingStyles)
	size += ord.String.Size(p.Campus.CampusSize)

	size += varint.Int.Size(p.Social.NightScene)
	size += stringSliceMUS.Size(p.Social.Sports)
	size += stringSliceMUS.Size(p.Social.Clubs)
	size += varint.Int.Size(p.Social.CulturalEventFreq)
	return size
}

func (s programMUS) Skip(bs []byte) (int, error) {
	_, n, err := s.Unmarshal(bs)
	return n, err
}

func academicTraits(a *core.AcademicProfile) [8]int {
	return [8]int{
		a.LearningStyle,
		a.FirstYearSpecialization,
		a.CoopImportance,
		a.ResearchImportance,
		a.CreativityOrientation,
		a.CareerCertainty,
		a.MathEnjoyment,
		a.CollaborationPreference,
	}
}
