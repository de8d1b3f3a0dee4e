// Package gocube explores the order of move sequences on a 3x3x3 cube.
//
// The cube is modelled as a 3x3x3 grid of 27 labelled cells. Every move
// lifts one slice of the grid out as a 3x3 plane, rotates it a quarter
// turn and writes it back. The order of a sequence is how many times it
// must be repeated on a solved cube before the cube is solved again.
//
// # Quick Start
//
// Measure the order of a sequence:
//
//	order, err := gocube.Order(gocube.R, gocube.U)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("R U has order", order)
//
// # Standalone Cube
//
//	cube := gocube.NewCube()
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//	cube.ApplyNotation("F B' M E S")
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Searching
//
// Search measures every sequence of a depth over a pool of moves:
//
//	err := gocube.Search(ctx, 3, func(r gocube.Result) error {
//	    fmt.Println(r.Name(), r.Order)
//	    return nil
//	}, gocube.WithPool(gocube.FacePool()), gocube.WithWorkers(4))
//
// Sequences with three identical moves in a row are skipped, and results
// arrive in the order of the pool, so repeated runs print identical output.
package gocube
