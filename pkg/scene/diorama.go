package scene

// DioramaCubeSize is the edge length shared by every diorama block
const DioramaCubeSize = 0.4

// DefaultDiorama returns the built-in nether portal diorama: a purple portal
// framed by obsidian, standing on stepped stone and netherrack over a grass plane.
func DefaultDiorama() *Description {
	return &Description{
		Name: "diorama",
		Camera: CameraDescription{
			Eye:    [3]float64{-1.5, 2, 5},
			Center: [3]float64{-1.5, 2, 0.5},
			Up:     [3]float64{0, 1, 0},
		},
		Materials: map[string]MaterialDescription{
			"obsidian": {
				Diffuse:  [3]uint8{30, 30, 30},
				Specular: 80,
				Albedo:   [4]float64{0.6, 0.4, 0.3, 0},
				Texture:  "obsidian.png",
			},
			"stone": {
				Diffuse:  [3]uint8{128, 128, 128},
				Specular: 0.2,
				Albedo:   [4]float64{0.7, 0.7, 0.7, 0},
				Texture:  "stone.png",
			},
			"netherrack": {
				Diffuse:  [3]uint8{150, 0, 0},
				Specular: 70,
				Albedo:   [4]float64{0.7, 0.2, 0.1, 0},
				Texture:  "netherrack.png",
			},
			"gold-block": {
				Diffuse:  [3]uint8{255, 215, 0},
				Specular: 1,
				Albedo:   [4]float64{1, 0.843, 0, 0},
				Texture:  "gold_block.png",
			},
			"stone-bricks": {
				Diffuse:  [3]uint8{180, 180, 180},
				Specular: 90,
				Albedo:   [4]float64{0.9, 0.5, 0.3, 0},
				Texture:  "stone_bricks.png",
			},
			"chiseled-stone-bricks": {
				Diffuse:  [3]uint8{220, 220, 220},
				Specular: 85,
				Albedo:   [4]float64{0.8, 0.6, 0.4, 0},
				Texture:  "chiseled_stone_bricks.png",
			},
			"purple": {
				Diffuse:  [3]uint8{160, 0, 190},
				Specular: 80,
				Albedo:   [4]float64{0.7, 0.5, 0.6, 0},
				Emissive: [3]uint8{75, 0, 90},
			},
			"grass": {
				Diffuse:  [3]uint8{0, 255, 0},
				Specular: 0.1,
				Albedo:   [4]float64{0.4, 0.6, 0.5, 0},
			},
		},
		CubeSize: DioramaCubeSize,
		Cubes:    dioramaCubes(),
		Ground: &GroundDescription{
			Center:   [3]float64{-2, 0.7, -4},
			Size:     10,
			Material: "grass",
		},
	}
}

func dioramaCubes() []CubeDescription {
	return []CubeDescription{
		// Portal
		{Center: [3]float64{-2.2, 2.4, -5}, Material: "purple"},
		{Center: [3]float64{-1.8, 2.4, -5}, Material: "purple"},
		{Center: [3]float64{-2.2, 2.8, -5}, Material: "purple"},
		{Center: [3]float64{-1.8, 2.8, -5}, Material: "purple"},
		{Center: [3]float64{-2.2, 3.2, -5}, Material: "purple"},
		{Center: [3]float64{-1.8, 3.2, -5}, Material: "purple"},

		// Obsidian frame
		{Center: [3]float64{-1.4, 2, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-1.4, 2.4, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-1.4, 2.8, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-1.4, 3.2, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-1.4, 3.6, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-1.8, 2, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-2.2, 2, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-2.6, 2, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-2.6, 2.4, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-2.6, 2.8, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-2.6, 3.2, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-2.6, 3.6, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-1.8, 3.6, -4.6}, Material: "obsidian"},
		{Center: [3]float64{-2.2, 3.6, -4.6}, Material: "obsidian"},

		// Surface
		{Center: [3]float64{-0.6, 2, -4.2}, Material: "gold-block"},
		{Center: [3]float64{-0.6, 1.6, -4.2}, Material: "netherrack"},
		{Center: [3]float64{-1, 1.6, -4.2}, Material: "stone"},
		{Center: [3]float64{-1.4, 1.6, -3.8}, Material: "stone"},
		{Center: [3]float64{-1.8, 1.6, -3.8}, Material: "stone"},
		{Center: [3]float64{-2.2, 1.6, -3.8}, Material: "stone"},
		{Center: [3]float64{-2.6, 1.6, -3.8}, Material: "stone"},
		{Center: [3]float64{-3, 1.6, -4.2}, Material: "stone"},
		{Center: [3]float64{-3.4, 1.6, -4.2}, Material: "netherrack"},
		{Center: [3]float64{-3.4, 2, -4.2}, Material: "gold-block"},

		// Lower level
		{Center: [3]float64{-0.6, 0.8, -3.8}, Material: "netherrack"},
		{Center: [3]float64{-0.6, 1.2, -3.8}, Material: "netherrack"},
		{Center: [3]float64{-1, 1.2, -3.8}, Material: "stone"},
		{Center: [3]float64{-1.4, 1.2, -3.4}, Material: "stone"},
		{Center: [3]float64{-1.8, 1.2, -3.4}, Material: "stone"},
		{Center: [3]float64{-2.2, 1.2, -3.4}, Material: "stone"},
		{Center: [3]float64{-2.6, 1.2, -3.4}, Material: "stone"},
		{Center: [3]float64{-3, 1.2, -3.8}, Material: "stone"},
		{Center: [3]float64{-3.4, 1.2, -3.8}, Material: "netherrack"},
		{Center: [3]float64{-3.4, 0.8, -3.8}, Material: "netherrack"},

		// Pillars around the portal
		{Center: [3]float64{-1, 2, -4.6}, Material: "stone-bricks"},
		{Center: [3]float64{-1, 2.4, -4.6}, Material: "chiseled-stone-bricks"},
		{Center: [3]float64{-1, 2.8, -4.6}, Material: "stone-bricks"},
		{Center: [3]float64{-1, 3.2, -4.6}, Material: "chiseled-stone-bricks"},
		{Center: [3]float64{-1, 3.6, -4.6}, Material: "stone-bricks"},
		{Center: [3]float64{-1, 4, -4.6}, Material: "stone-bricks"},
		{Center: [3]float64{-3, 2, -4.6}, Material: "stone-bricks"},
		{Center: [3]float64{-3, 2.4, -4.6}, Material: "chiseled-stone-bricks"},
		{Center: [3]float64{-3, 2.8, -4.6}, Material: "stone-bricks"},
		{Center: [3]float64{-3, 3.2, -4.6}, Material: "chiseled-stone-bricks"},
		{Center: [3]float64{-3, 3.6, -4.6}, Material: "stone-bricks"},
		{Center: [3]float64{-3, 4, -4.6}, Material: "stone-bricks"},
		{Center: [3]float64{-2.6, 4, -4.6}, Material: "chiseled-stone-bricks"},
		{Center: [3]float64{-2.2, 4, -4.6}, Material: "gold-block"},
		{Center: [3]float64{-1.8, 4, -4.6}, Material: "gold-block"},
		{Center: [3]float64{-1.4, 4, -4.6}, Material: "chiseled-stone-bricks"},
		{Center: [3]float64{-2.2, 4.2, -4.4}, Material: "chiseled-stone-bricks"},
		{Center: [3]float64{-1.8, 4.2, -4.4}, Material: "chiseled-stone-bricks"},

		// Floor
		{Center: [3]float64{-1, 0.8, -3.4}, Material: "netherrack"},
		{Center: [3]float64{-1.4, 0.8, -3.4}, Material: "netherrack"},
		{Center: [3]float64{-1.8, 0.8, -3.4}, Material: "netherrack"},
		{Center: [3]float64{-2.2, 0.8, -3.4}, Material: "netherrack"},
		{Center: [3]float64{-2.6, 0.8, -3.4}, Material: "netherrack"},
		{Center: [3]float64{-3, 0.8, -3.4}, Material: "netherrack"},
	}
}
