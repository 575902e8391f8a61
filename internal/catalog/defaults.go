package catalog

import (
	"skymemo/internal/domain"
)

// Default builds the standard SkyMemo catalog.
func Default() *Catalog {
	return &Catalog{
		WeatherMoods: map[domain.Condition]MoodProfile{
			domain.ConditionSunny: {
				PrimaryMood:    "energetic",
				SecondaryMoods: []string{"hopeful", "calm"},
				Description:    "bright and uplifting",
			},
			domain.ConditionPartlyCloudy: {
				PrimaryMood:    "calm",
				SecondaryMoods: []string{"reflective", "balanced"},
				Description:    "mixed and transitional",
			},
			domain.ConditionCloudy: {
				PrimaryMood:    "reflective",
				SecondaryMoods: []string{"calm", "introspective"},
				Description:    "contemplative and soft",
			},
			domain.ConditionRainy: {
				PrimaryMood:    "reflective",
				SecondaryMoods: []string{"melancholic", "cozy"},
				Description:    "introspective and cozy",
			},
			domain.ConditionStormy: {
				PrimaryMood:    "intense",
				SecondaryMoods: []string{"energetic", "dramatic"},
				Description:    "powerful and dramatic",
			},
			domain.ConditionSnowy: {
				PrimaryMood:    "calm",
				SecondaryMoods: []string{"peaceful", "quiet"},
				Description:    "serene and hushed",
			},
			domain.ConditionFoggy: {
				PrimaryMood:    "mysterious",
				SecondaryMoods: []string{"reflective", "uncertain"},
				Description:    "unclear and mysterious",
			},
			domain.ConditionWindy: {
				PrimaryMood:    "energetic",
				SecondaryMoods: []string{"restless", "dynamic"},
				Description:    "dynamic and changeable",
			},
		},

		TempBands: []TempBand{
			{domain.TempVeryHot, 30},
			{domain.TempHot, 25},
			{domain.TempWarm, 20},
			{domain.TempMild, 15},
			{domain.TempCool, 10},
			{domain.TempCold, 0},
			// Anything below every band classifies as very_cold.
		},

		TempMoods: map[domain.TemperatureCategory][]string{
			domain.TempVeryCold: {"cozy", "introspective"},
			domain.TempCold:     {"crisp", "alert"},
			domain.TempCool:     {"comfortable", "balanced"},
			domain.TempMild:     {"pleasant", "calm"},
			domain.TempWarm:     {"energetic", "vibrant"},
			domain.TempHot:      {"lazy", "relaxed"},
			domain.TempVeryHot:  {"sluggish", "seeking_rest"},
		},

		// Rule order is part of the classification contract: "partly sunny"
		// matches the sunny rule via "sun" before partly_cloudy is reached.
		KeywordRules: []KeywordRule{
			{domain.ConditionSunny, []string{"sun", "sunny", "clear", "bright"}},
			{domain.ConditionPartlyCloudy, []string{"partly cloudy", "partly sunny", "scattered clouds"}},
			{domain.ConditionCloudy, []string{"cloudy", "overcast", "grey", "gray"}},
			{domain.ConditionRainy, []string{"rain", "rainy", "drizzle", "shower", "precipitation"}},
			{domain.ConditionStormy, []string{"storm", "thunder", "lightning", "severe"}},
			{domain.ConditionSnowy, []string{"snow", "snowy", "flurries", "blizzard"}},
			{domain.ConditionFoggy, []string{"fog", "foggy", "mist", "misty", "haze"}},
			{domain.ConditionWindy, []string{"wind", "windy", "breezy", "gusty"}},
		},

		Templates: map[string][]string{
			"reflective": {
				"Today's {weather_desc} weather invites reflection. What emotions are sitting with you right now?",
				"The {weather_condition} outside mirrors inner contemplation. What thoughts have been recurring lately?",
				"In this {weather_desc} moment, what aspects of your life deserve deeper attention?",
				"How does today's {weather_condition} weather influence your perspective on recent events?",
				"What would you tell your past self about handling days like this {weather_desc} one?",
			},
			"energetic": {
				"The {weather_desc} weather sparks energy! What goals are you excited to pursue?",
				"This {weather_condition} day feels full of possibility. What would you do if you couldn't fail?",
				"With {weather_desc} conditions outside, what adventure or project calls to you?",
				"The vibrant {weather_condition} weather energizes action. What's one thing you'll accomplish today?",
				"This {weather_desc} energy is contagious. What brings you alive right now?",
			},
			"calm": {
				"The {weather_desc} atmosphere invites peace. What are you grateful for today?",
				"In this {weather_condition} stillness, what simple pleasures brought you joy?",
				"Today's {weather_desc} weather suggests rest. How can you be kinder to yourself?",
				"The gentle {weather_condition} conditions create space for calm. What does your body need right now?",
				"This {weather_desc} moment is perfect for appreciation. What went well today?",
			},
			"melancholic": {
				"The {weather_desc} weather holds space for sadness. What loss or change are you processing?",
				"This {weather_condition} day allows for gentle grief. What do you need to let go of?",
				"In {weather_desc} weather like this, what memories surface for you?",
				"The {weather_condition} atmosphere validates difficult feelings. What hurts right now?",
				"This {weather_desc} backdrop supports healing. What wisdom has pain taught you?",
			},
			"hopeful": {
				"Today's {weather_desc} weather whispers possibility. What new beginning excites you?",
				"The {weather_condition} conditions feel like a fresh start. What are you hopeful about?",
				"This {weather_desc} day suggests transformation. What positive change do you sense coming?",
				"With {weather_condition} weather like this, what dream feels closer to reality?",
				"The {weather_desc} atmosphere nurtures hope. What future version of yourself can you envision?",
			},
			"intense": {
				"Today's {weather_desc} weather matches inner intensity. What strong emotions need expression?",
				"The {weather_condition} conditions mirror passion. What are you fired up about?",
				"This {weather_desc} energy demands attention. What truth needs to be spoken?",
				"The powerful {weather_condition} weather reflects big feelings. What's demanding to be felt?",
				"In this {weather_desc} intensity, what bold action is calling you?",
			},
			"cozy": {
				"The {weather_desc} weather invites coziness. What comforts are you savoring today?",
				"This {weather_condition} day is perfect for nesting. What makes you feel safe and warm?",
				"Today's {weather_desc} conditions suggest hygge. What small pleasures warmed your heart?",
				"The {weather_condition} weather creates a cocoon. What are you protecting or nurturing?",
				"This {weather_desc} atmosphere invites softness. How can you pamper yourself today?",
			},
			"balanced": {
				"Today's {weather_desc} weather suggests equilibrium. What feels in harmony right now?",
				"The {weather_condition} conditions mirror balance. Where are you finding your center?",
				"This {weather_desc} day invites moderation. What needs right-sizing in your life?",
				"The steady {weather_condition} weather reflects stability. What foundations are you building?",
				"In this {weather_desc} balance, what opposing forces are you integrating?",
			},
		},

		MoodColors: map[string]string{
			"reflective":  "#6B7FD7",
			"energetic":   "#F59E42",
			"calm":        "#7BC8A4",
			"melancholic": "#8E9AAF",
			"hopeful":     "#FFD93D",
			"intense":     "#E63946",
			"cozy":        "#D4A574",
			"balanced":    "#4ECDC4",
			"peaceful":    "#A8DADC",
			"mysterious":  "#52489C",
		},
	}
}
