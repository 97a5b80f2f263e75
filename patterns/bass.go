package patterns

// Bass pattern catalog. Positions and durations are beats within a 4/4 bar;
// offsets are semitones above the chord root. The first pattern of a genre
// is the primary, the second the alternate.
var bassCatalog = map[Genre][]BassPattern{
	GenreRock: {
		{
			Name: "rock_eighths",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 105, Duration: 0.5},
				{Position: 0.5, RootOffset: 0, Velocity: 90, Duration: 0.5},
				{Position: 1.0, RootOffset: 0, Velocity: 100, Duration: 0.5},
				{Position: 1.5, RootOffset: 0, Velocity: 90, Duration: 0.5},
				{Position: 2.0, RootOffset: 0, Velocity: 105, Duration: 0.5},
				{Position: 2.5, RootOffset: 0, Velocity: 90, Duration: 0.5},
				{Position: 3.0, RootOffset: 0, Velocity: 100, Duration: 0.5},
				{Position: 3.5, RootOffset: 0, Velocity: 90, Duration: 0.5},
			},
		},
		{
			Name: "rock_root_fifth",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 105, Duration: 1.0},
				{Position: 1.0, RootOffset: 7, Velocity: 95, Duration: 1.0},
				{Position: 2.0, RootOffset: 0, Velocity: 105, Duration: 1.0},
				{Position: 3.0, RootOffset: 0, OctaveOffset: 1, Velocity: 95, Duration: 1.0},
			},
		},
	},
	GenrePop: {
		{
			Name: "pop_pulse",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 100, Duration: 1.5},
				{Position: 1.5, RootOffset: 0, Velocity: 85, Duration: 1.0},
				{Position: 2.5, RootOffset: 7, Velocity: 90, Duration: 0.5},
				{Position: 3.0, RootOffset: 0, Velocity: 95, Duration: 1.0},
			},
		},
		{
			Name: "pop_octave",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 100, Duration: 0.5},
				{Position: 0.5, RootOffset: 0, OctaveOffset: 1, Velocity: 85, Duration: 0.5},
				{Position: 1.0, RootOffset: 0, Velocity: 100, Duration: 0.5},
				{Position: 1.5, RootOffset: 0, OctaveOffset: 1, Velocity: 85, Duration: 0.5},
				{Position: 2.0, RootOffset: 0, Velocity: 100, Duration: 0.5},
				{Position: 2.5, RootOffset: 0, OctaveOffset: 1, Velocity: 85, Duration: 0.5},
				{Position: 3.0, RootOffset: 0, Velocity: 100, Duration: 0.5},
				{Position: 3.5, RootOffset: 7, Velocity: 85, Duration: 0.5},
			},
		},
	},
	GenreJazz: {
		{
			Name: "jazz_walk",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 95, Duration: 1.0},
				{Position: 1.0, RootOffset: 4, Velocity: 85, Duration: 1.0},
				{Position: 2.0, RootOffset: 7, Velocity: 90, Duration: 1.0},
				{Position: 3.0, RootOffset: 9, Velocity: 85, Duration: 1.0},
			},
		},
		{
			Name: "jazz_walk_down",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, OctaveOffset: 1, Velocity: 95, Duration: 1.0},
				{Position: 1.0, RootOffset: 10, Velocity: 85, Duration: 1.0},
				{Position: 2.0, RootOffset: 7, Velocity: 90, Duration: 1.0},
				{Position: 3.0, RootOffset: 4, Velocity: 85, Duration: 1.0},
			},
		},
	},
	GenreBlues: {
		{
			Name: "blues_boogie",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 100, Duration: 1.0},
				{Position: 1.0, RootOffset: 4, Velocity: 90, Duration: 1.0},
				{Position: 2.0, RootOffset: 7, Velocity: 95, Duration: 1.0},
				{Position: 3.0, RootOffset: 9, Velocity: 90, Duration: 1.0},
			},
		},
		{
			Name: "blues_boogie_top",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 9, Velocity: 95, Duration: 1.0},
				{Position: 1.0, RootOffset: 10, Velocity: 90, Duration: 1.0},
				{Position: 2.0, RootOffset: 9, Velocity: 95, Duration: 1.0},
				{Position: 3.0, RootOffset: 7, Velocity: 90, Duration: 1.0},
			},
		},
	},
	GenreFunk: {
		{
			Name: "funk_syncopated",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 115, Duration: 0.5},
				{Position: 0.75, RootOffset: 0, Velocity: 95, Duration: 0.25},
				{Position: 1.5, RootOffset: 7, Velocity: 100, Duration: 0.5},
				{Position: 2.5, RootOffset: 0, OctaveOffset: 1, Velocity: 105, Duration: 0.5},
				{Position: 3.25, RootOffset: 10, Velocity: 95, Duration: 0.5},
			},
		},
		{
			Name: "funk_one",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 120, Duration: 1.0},
				{Position: 2.5, RootOffset: 0, Velocity: 90, Duration: 0.25},
				{Position: 2.75, RootOffset: 0, Velocity: 95, Duration: 0.25},
				{Position: 3.5, RootOffset: 7, Velocity: 100, Duration: 0.5},
			},
		},
	},
	GenreCountry: {
		{
			Name: "country_root_fifth",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 100, Duration: 2.0},
				{Position: 2.0, RootOffset: 7, Velocity: 95, Duration: 2.0},
			},
		},
		{
			Name: "country_walkup",
			Bars: 1,
			Notes: []BassNote{
				{Position: 0.0, RootOffset: 0, Velocity: 100, Duration: 1.0},
				{Position: 1.0, RootOffset: 7, Velocity: 95, Duration: 1.0},
				{Position: 2.0, RootOffset: 0, Velocity: 100, Duration: 1.0},
				{Position: 3.0, RootOffset: 4, Velocity: 90, Duration: 1.0},
			},
		},
	},
}
