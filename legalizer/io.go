package legalizer

// perimeterSites enumerates the device's W x H border ring clockwise,
// starting at (1, 0): the top edge left-to-right, the right edge
// top-to-bottom, the bottom edge right-to-left, then the left edge
// bottom-to-top. Length is 2(W+H-4).
func perimeterSites(width, height int) [][2]int {
	sites := make([][2]int, 0, 2*(width+height-4))

	for x := 1; x <= width-2; x++ {
		sites = append(sites, [2]int{x, 0})
	}
	for y := 1; y <= height-2; y++ {
		sites = append(sites, [2]int{width - 1, y})
	}
	for x := width - 2; x >= 1; x-- {
		sites = append(sites, [2]int{x, height - 1})
	}
	for y := height - 2; y >= 1; y-- {
		sites = append(sites, [2]int{0, y})
	}

	return sites
}

// LegalizeIOPerimeter distributes numIO I/O blocks (indices [0, numIO))
// evenly over the device's perimeter sites: at perimeter site s, the
// cumulative count of blocks emitted is floor(blocksPerSite*(s+1)),
// where blocksPerSite = numIO/numSites.
func LegalizeIOPerimeter(width, height, numIO int) (x, y []int) {
	sites := perimeterSites(width, height)
	x = make([]int, numIO)
	y = make([]int, numIO)

	if numIO == 0 || len(sites) == 0 {
		return x, y
	}

	blocksPerSite := float64(numIO) / float64(len(sites))
	prev := 0
	next := 0
	for s, site := range sites {
		end := int(blocksPerSite * float64(s+1))
		if end > numIO {
			end = numIO
		}
		for i := prev; i < end; i++ {
			x[i], y[i] = site[0], site[1]
			next = i + 1
		}
		prev = next
	}
	// Any remainder (rounding at the final site) goes to the last site.
	for i := prev; i < numIO; i++ {
		x[i], y[i] = sites[len(sites)-1][0], sites[len(sites)-1][1]
	}

	return x, y
}
