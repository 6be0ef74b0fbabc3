// Package mobile is the entry point for ebitenmobile bind:
//
//	ebitenmobile bind -target android -javapkg dk.aerialrush.mobile -o aerialrush.aar ./mobile
package mobile
