package services

import "math/rand/v2"

var foods = []string{
	"Pizza", "Sushi", "Tacos", "Burrito", "Ramen", "Pho", "Pad Thai",
	"Burger", "Fried Chicken", "Falafel", "Shawarma", "Curry", "Biryani",
	"Dumplings", "Poke Bowl", "Lasagna", "Carbonara", "Paella", "Gyros",
	"Bibimbap", "Fish and Chips", "Caesar Salad", "Mac and Cheese",
	"Bánh Mì", "Kebab", "Dim Sum", "Risotto", "Quesadilla", "Tikka Masala",
	"Udon",
}

// FoodService suggests a dish when the user cannot decide what to eat.
type FoodService struct {
	intn func(n int) int
}

func NewFoodService() *FoodService {
	return &FoodService{intn: rand.IntN}
}

func (s *FoodService) RandomFood() string {
	return foods[s.intn(len(foods))]
}
