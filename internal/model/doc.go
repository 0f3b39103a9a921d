// Package model defines the core data structure used throughout aoc-init.
//
// # Challenge
//
// Challenge identifies one daily puzzle by (year, day) and knows how to derive
// everything that depends on that pair:
//
//	ch, err := model.New(2024, 7)
//	fmt.Println(ch.PaddedDay())                     // "07"
//	fmt.Println(ch.Dir("/puzzles"))                 // "/puzzles/2024/07"
//	fmt.Println(ch.URL("https://adventofcode.com")) // statement page
//	fmt.Println(ch.InputURL("https://adventofcode.com"))
//
// Validation happens in New; a Challenge obtained from it is always usable.
package model
