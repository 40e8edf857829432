package recommend

// Popularity ranks a recipe from its rating and comment aggregates:
//
//	ratingsNum * r^2 + (commentsNum - ratingsNum)
//
// where r is the mean rating, or 1 when the recipe has no ratings yet so the
// engagement term is not the only thing left standing.
func Popularity(ratingsNum int, rating float64, commentsNum int) float64 {
	r := rating
	if ratingsNum == 0 {
		r = 1
	}
	return float64(ratingsNum)*r*r + float64(commentsNum-ratingsNum)
}
