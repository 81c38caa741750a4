package transform

// FlipHorizontal mirrors every row of data around its vertical center line.
func FlipHorizontal(data []uint8, width, height int) {
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width/2; x++ {
			left := (row + x) * 4
			right := (row + width - 1 - x) * 4
			swapPixel(data, left, right)
		}
	}
}

// FlipVertical mirrors data around its horizontal center line.
func FlipVertical(data []uint8, width, height int) {
	stride := width * 4
	tmp := make([]uint8, stride)

	for y := 0; y < height/2; y++ {
		top := data[y*stride : (y+1)*stride]
		bottom := data[(height-1-y)*stride : (height-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

func swapPixel(data []uint8, i, j int) {
	data[i+0], data[j+0] = data[j+0], data[i+0]
	data[i+1], data[j+1] = data[j+1], data[i+1]
	data[i+2], data[j+2] = data[j+2], data[i+2]
	data[i+3], data[j+3] = data[j+3], data[i+3]
}
