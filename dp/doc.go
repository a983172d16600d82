// Package dp collects small dynamic-programming routines over numeric slices.
//
// Kadane finds a maximum-sum contiguous subarray; HouseRobber and its variants
// pick a maximum-sum set of pairwise non-adjacent elements. All functions are
// generic over the numeric types of golang.org/x/exp/constraints and run in O(n)
// time with O(1) extra space unless they return a witness.
package dp
