// Package kmeans finds k-means centroids of sorted one-dimensional integer
// samples.
//
// Because the samples are sorted, every cluster is a contiguous index range
// and moving a boundary only touches the samples next to it. A pass over all
// boundaries is linear in the number of moved samples and the number of
// passes is capped at 2*bits.Len(n), which keeps a call within O(n log n).
package kmeans
