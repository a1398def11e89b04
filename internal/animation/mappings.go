package animation

import (
	"github.com/ytget/profile-header/internal/model"
)

// mapping declares how one target follows the scrolled distance d.
// raw may leave the declared range; Evaluate clamps it.
type mapping struct {
	target model.Target
	raw    func(g model.Geometry, d float64) float64
	bounds func(g model.Geometry) model.Range
}

// headerTranslation moves the avatar, username and button row up at H_a/(H_a+H_b) of the scroll speed
func headerTranslation(g model.Geometry, d float64) float64 {
	return -d * g.AvatarHeight / g.FadeDistance()
}

// fade goes from 1 to 0 over H_a+H_b of scrolling
func fade(g model.Geometry, d float64) float64 {
	return 1 - model.Clamp(d/g.FadeDistance(), 0, 1)
}

func usernameScale(g model.Geometry, d float64) float64 {
	s := g.ScaleDivisor
	return 1 + model.Clamp(-d/(g.CollapseDistance()*s), -1/s, 0)
}

// collapse follows the scroll one to one until the header is compact
func collapse(g model.Geometry, d float64) float64 {
	return -model.Clamp(d, 0, g.CollapseDistance())
}

func buttonsTranslation(g model.Geometry, d float64) float64 {
	return -model.Clamp(d*g.AvatarHeight/g.FadeDistance(), 0, buttonsTravel(g))
}

// buttonsTravel is how far the button row may move up
func buttonsTravel(g model.Geometry) float64 {
	return g.AvatarHeight + g.UsernameHeight + g.UsernameShrink()
}

func avatarBounds(g model.Geometry) model.Range {
	return model.Range{Min: -g.AvatarHeight, Max: 0}
}

func unitBounds(model.Geometry) model.Range {
	return model.Range{Min: 0, Max: 1}
}

func usernameScaleBounds(g model.Geometry) model.Range {
	return model.Range{Min: 1 - 1/g.ScaleDivisor, Max: 1}
}

func collapseBounds(g model.Geometry) model.Range {
	return model.Range{Min: -g.CollapseDistance(), Max: 0}
}

func buttonsTranslationBounds(g model.Geometry) model.Range {
	return model.Range{Min: -buttonsTravel(g), Max: 0}
}

// declareMappings builds the mapping table in application order
func declareMappings(buttonCount int) []mapping {
	t := func(e model.Element, i int, p model.Property) model.Target {
		return model.Target{Element: e, Index: i, Property: p}
	}

	mappings := []mapping{
		{t(model.ElementAvatar, 0, model.PropertyTranslateY), headerTranslation, avatarBounds},
		{t(model.ElementAvatar, 0, model.PropertyOpacity), fade, unitBounds},
		{t(model.ElementUsername, 0, model.PropertyTranslateY), headerTranslation, avatarBounds},
		{t(model.ElementUsername, 0, model.PropertyScaleX), usernameScale, usernameScaleBounds},
		{t(model.ElementUsername, 0, model.PropertyScaleY), usernameScale, usernameScaleBounds},
		{t(model.ElementHeaderBackground, 0, model.PropertyOffsetY), collapse, collapseBounds},
	}

	for i := 0; i < buttonCount; i++ {
		mappings = append(mappings,
			mapping{t(model.ElementActionButton, i, model.PropertyScaleX), fade, unitBounds},
			mapping{t(model.ElementActionButton, i, model.PropertyScaleY), fade, unitBounds},
			mapping{t(model.ElementActionButton, i, model.PropertyOpacity), fade, unitBounds},
		)
	}

	return append(mappings,
		mapping{t(model.ElementActionButtons, 0, model.PropertyTranslateY), buttonsTranslation, buttonsTranslationBounds},
		mapping{t(model.ElementPivotTabs, 0, model.PropertyTranslateY), collapse, collapseBounds},
	)
}
