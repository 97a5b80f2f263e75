package patterns

// Drum pattern catalog. Positions are beats within a 4/4 bar; all patterns
// are a single bar long.
var drumCatalog = map[Genre]drumEntry{
	GenreRock: {
		grooves: []DrumPattern{
			{
				Name: "rock_backbeat",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 110},
					{Position: 0.0, Drum: DrumClosedHat, Velocity: 80},
					{Position: 0.5, Drum: DrumClosedHat, Velocity: 60},
					{Position: 1.0, Drum: DrumSnare, Velocity: 105},
					{Position: 1.0, Drum: DrumClosedHat, Velocity: 80},
					{Position: 1.5, Drum: DrumClosedHat, Velocity: 60},
					{Position: 2.0, Drum: DrumKick, Velocity: 110},
					{Position: 2.0, Drum: DrumClosedHat, Velocity: 80},
					{Position: 2.5, Drum: DrumClosedHat, Velocity: 60},
					{Position: 3.0, Drum: DrumSnare, Velocity: 105},
					{Position: 3.0, Drum: DrumClosedHat, Velocity: 80},
					{Position: 3.5, Drum: DrumClosedHat, Velocity: 60},
				},
			},
			{
				Name: "rock_drive",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 115},
					{Position: 0.0, Drum: DrumCrash, Velocity: 95},
					{Position: 0.5, Drum: DrumOpenHat, Velocity: 75},
					{Position: 1.0, Drum: DrumSnare, Velocity: 110},
					{Position: 1.5, Drum: DrumOpenHat, Velocity: 75},
					{Position: 2.0, Drum: DrumKick, Velocity: 115},
					{Position: 2.5, Drum: DrumKick, Velocity: 100},
					{Position: 2.5, Drum: DrumOpenHat, Velocity: 75},
					{Position: 3.0, Drum: DrumSnare, Velocity: 110},
					{Position: 3.5, Drum: DrumOpenHat, Velocity: 75},
				},
			},
		},
		fills: []DrumPattern{
			{
				Name: "rock_snare_roll",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 110},
					{Position: 1.0, Drum: DrumSnare, Velocity: 100},
					{Position: 2.0, Drum: DrumSnare, Velocity: 90},
					{Position: 2.5, Drum: DrumSnare, Velocity: 95},
					{Position: 3.0, Drum: DrumSnare, Velocity: 100},
					{Position: 3.25, Drum: DrumSnare, Velocity: 105},
					{Position: 3.5, Drum: DrumSnare, Velocity: 110},
					{Position: 3.75, Drum: DrumSnare, Velocity: 115},
				},
			},
			{
				Name: "rock_crash_fill",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 110},
					{Position: 1.0, Drum: DrumSnare, Velocity: 105},
					{Position: 2.0, Drum: DrumSnare, Velocity: 95},
					{Position: 3.0, Drum: DrumSnare, Velocity: 105},
					{Position: 3.5, Drum: DrumCrash, Velocity: 100},
				},
			},
		},
	},
	GenrePop: {
		grooves: []DrumPattern{
			{
				Name: "pop_four_floor",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 105},
					{Position: 0.5, Drum: DrumClosedHat, Velocity: 65},
					{Position: 1.0, Drum: DrumKick, Velocity: 100},
					{Position: 1.0, Drum: DrumSnare, Velocity: 95},
					{Position: 1.5, Drum: DrumClosedHat, Velocity: 65},
					{Position: 2.0, Drum: DrumKick, Velocity: 105},
					{Position: 2.5, Drum: DrumClosedHat, Velocity: 65},
					{Position: 3.0, Drum: DrumKick, Velocity: 100},
					{Position: 3.0, Drum: DrumSnare, Velocity: 95},
					{Position: 3.5, Drum: DrumClosedHat, Velocity: 65},
				},
			},
			{
				Name: "pop_lift",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 110},
					{Position: 0.0, Drum: DrumOpenHat, Velocity: 70},
					{Position: 1.0, Drum: DrumKick, Velocity: 105},
					{Position: 1.0, Drum: DrumSnare, Velocity: 100},
					{Position: 2.0, Drum: DrumKick, Velocity: 110},
					{Position: 2.0, Drum: DrumOpenHat, Velocity: 70},
					{Position: 3.0, Drum: DrumKick, Velocity: 105},
					{Position: 3.0, Drum: DrumSnare, Velocity: 100},
					{Position: 3.5, Drum: DrumOpenHat, Velocity: 70},
				},
			},
		},
		fills: []DrumPattern{
			{
				Name: "pop_build",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 105},
					{Position: 1.0, Drum: DrumSnare, Velocity: 85},
					{Position: 2.0, Drum: DrumSnare, Velocity: 95},
					{Position: 3.0, Drum: DrumSnare, Velocity: 105},
					{Position: 3.5, Drum: DrumSnare, Velocity: 115},
				},
			},
		},
	},
	GenreJazz: {
		grooves: []DrumPattern{
			{
				Name: "jazz_swing",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumRide, Velocity: 85},
					{Position: 1.0, Drum: DrumRide, Velocity: 80},
					{Position: 1.67, Drum: DrumRide, Velocity: 65},
					{Position: 2.0, Drum: DrumRide, Velocity: 85},
					{Position: 3.0, Drum: DrumRide, Velocity: 80},
					{Position: 3.67, Drum: DrumRide, Velocity: 65},
					{Position: 1.0, Drum: DrumClosedHat, Velocity: 70},
					{Position: 3.0, Drum: DrumClosedHat, Velocity: 70},
				},
			},
			{
				Name: "jazz_swing_comp",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumRide, Velocity: 90},
					{Position: 0.67, Drum: DrumKick, Velocity: 60},
					{Position: 1.0, Drum: DrumRide, Velocity: 80},
					{Position: 1.67, Drum: DrumRide, Velocity: 65},
					{Position: 2.0, Drum: DrumRide, Velocity: 90},
					{Position: 2.67, Drum: DrumSnare, Velocity: 55},
					{Position: 3.0, Drum: DrumRide, Velocity: 80},
					{Position: 3.67, Drum: DrumRide, Velocity: 65},
					{Position: 1.0, Drum: DrumClosedHat, Velocity: 70},
					{Position: 3.0, Drum: DrumClosedHat, Velocity: 70},
				},
			},
		},
		fills: []DrumPattern{
			{
				Name: "jazz_brush_fill",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumRide, Velocity: 85},
					{Position: 1.0, Drum: DrumSnare, Velocity: 60},
					{Position: 1.67, Drum: DrumSnare, Velocity: 65},
					{Position: 2.33, Drum: DrumSnare, Velocity: 70},
					{Position: 3.0, Drum: DrumSnare, Velocity: 75},
					{Position: 3.67, Drum: DrumCrash, Velocity: 70},
				},
			},
		},
	},
	GenreBlues: {
		grooves: []DrumPattern{
			{
				Name: "blues_shuffle",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 105},
					{Position: 0.0, Drum: DrumClosedHat, Velocity: 80},
					{Position: 0.67, Drum: DrumClosedHat, Velocity: 60},
					{Position: 1.0, Drum: DrumSnare, Velocity: 100},
					{Position: 1.0, Drum: DrumClosedHat, Velocity: 80},
					{Position: 1.67, Drum: DrumClosedHat, Velocity: 60},
					{Position: 2.0, Drum: DrumKick, Velocity: 105},
					{Position: 2.0, Drum: DrumClosedHat, Velocity: 80},
					{Position: 2.67, Drum: DrumClosedHat, Velocity: 60},
					{Position: 3.0, Drum: DrumSnare, Velocity: 100},
					{Position: 3.0, Drum: DrumClosedHat, Velocity: 80},
					{Position: 3.67, Drum: DrumClosedHat, Velocity: 60},
				},
			},
		},
		fills: []DrumPattern{
			{
				Name: "blues_turnaround",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 105},
					{Position: 1.0, Drum: DrumSnare, Velocity: 95},
					{Position: 2.0, Drum: DrumSnare, Velocity: 85},
					{Position: 2.67, Drum: DrumSnare, Velocity: 95},
					{Position: 3.33, Drum: DrumSnare, Velocity: 105},
					{Position: 3.67, Drum: DrumCrash, Velocity: 95},
				},
			},
		},
	},
	GenreFunk: {
		grooves: []DrumPattern{
			{
				Name: "funk_sixteenth",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 115},
					{Position: 0.0, Drum: DrumClosedHat, Velocity: 75},
					{Position: 0.25, Drum: DrumClosedHat, Velocity: 55},
					{Position: 0.5, Drum: DrumClosedHat, Velocity: 65},
					{Position: 0.75, Drum: DrumKick, Velocity: 95},
					{Position: 0.75, Drum: DrumClosedHat, Velocity: 55},
					{Position: 1.0, Drum: DrumSnare, Velocity: 110},
					{Position: 1.0, Drum: DrumClosedHat, Velocity: 75},
					{Position: 1.5, Drum: DrumClosedHat, Velocity: 65},
					{Position: 1.75, Drum: DrumSnare, Velocity: 55},
					{Position: 2.0, Drum: DrumClosedHat, Velocity: 75},
					{Position: 2.5, Drum: DrumKick, Velocity: 105},
					{Position: 2.5, Drum: DrumClosedHat, Velocity: 65},
					{Position: 3.0, Drum: DrumSnare, Velocity: 110},
					{Position: 3.0, Drum: DrumClosedHat, Velocity: 75},
					{Position: 3.25, Drum: DrumSnare, Velocity: 50},
					{Position: 3.5, Drum: DrumOpenHat, Velocity: 70},
				},
			},
			{
				Name: "funk_chorus",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 120},
					{Position: 0.0, Drum: DrumCrash, Velocity: 90},
					{Position: 0.5, Drum: DrumClosedHat, Velocity: 70},
					{Position: 1.0, Drum: DrumSnare, Velocity: 115},
					{Position: 1.5, Drum: DrumKick, Velocity: 100},
					{Position: 2.0, Drum: DrumKick, Velocity: 115},
					{Position: 2.5, Drum: DrumOpenHat, Velocity: 75},
					{Position: 3.0, Drum: DrumSnare, Velocity: 115},
					{Position: 3.75, Drum: DrumSnare, Velocity: 60},
				},
			},
		},
		fills: []DrumPattern{
			{
				Name: "funk_ghost_fill",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 115},
					{Position: 0.5, Drum: DrumSnare, Velocity: 55},
					{Position: 1.0, Drum: DrumSnare, Velocity: 110},
					{Position: 1.75, Drum: DrumSnare, Velocity: 60},
					{Position: 2.25, Drum: DrumSnare, Velocity: 90},
					{Position: 2.75, Drum: DrumSnare, Velocity: 100},
					{Position: 3.25, Drum: DrumSnare, Velocity: 110},
					{Position: 3.75, Drum: DrumCrash, Velocity: 95},
				},
			},
		},
	},
	GenreCountry: {
		grooves: []DrumPattern{
			{
				Name: "country_train",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 100},
					{Position: 0.5, Drum: DrumSnare, Velocity: 60},
					{Position: 1.0, Drum: DrumSnare, Velocity: 95},
					{Position: 1.5, Drum: DrumSnare, Velocity: 60},
					{Position: 2.0, Drum: DrumKick, Velocity: 100},
					{Position: 2.5, Drum: DrumSnare, Velocity: 60},
					{Position: 3.0, Drum: DrumSnare, Velocity: 95},
					{Position: 3.5, Drum: DrumSnare, Velocity: 60},
				},
			},
			{
				Name: "country_two_step",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 105},
					{Position: 0.5, Drum: DrumClosedHat, Velocity: 65},
					{Position: 1.0, Drum: DrumSnare, Velocity: 100},
					{Position: 1.5, Drum: DrumClosedHat, Velocity: 65},
					{Position: 2.0, Drum: DrumKick, Velocity: 105},
					{Position: 2.5, Drum: DrumClosedHat, Velocity: 65},
					{Position: 3.0, Drum: DrumSnare, Velocity: 100},
					{Position: 3.5, Drum: DrumClosedHat, Velocity: 65},
				},
			},
		},
		fills: []DrumPattern{
			{
				Name: "country_pickup",
				Bars: 1,
				Hits: []DrumHit{
					{Position: 0.0, Drum: DrumKick, Velocity: 100},
					{Position: 1.0, Drum: DrumSnare, Velocity: 90},
					{Position: 2.0, Drum: DrumSnare, Velocity: 85},
					{Position: 3.0, Drum: DrumSnare, Velocity: 95},
					{Position: 3.5, Drum: DrumSnare, Velocity: 100},
				},
			},
		},
	},
}
