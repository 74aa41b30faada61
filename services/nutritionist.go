package services

import "strings"

// Nutritionist is the scripted stand-in for an AI advisor: a pure,
// stateless mapping from free text to one of a fixed set of answers.
type Nutritionist struct {
	rules []responseRule
}

// responseRule pairs a keyword predicate with its reply. Rules are
// evaluated in order and the first match wins; several keyword sets
// overlap ("meal plan for weight loss" matches both the meal-plan and
// weight-loss sets), so the order is load-bearing. Do not reorder.
type responseRule struct {
	match func(msg string) bool
	reply func(msg string) string
}

func NewNutritionist() *Nutritionist {
	n := &Nutritionist{}
	n.rules = []responseRule{
		{
			match: anyOf("hello", "hi", "hey"),
			reply: fixed("Hello! I'm your AI nutrition assistant. How can I help you today?"),
		},
		{
			match: anyOf("muscle", "build muscle", "gain muscle"),
			reply: fixed("For muscle building, you should focus on:\n\n1. Increased protein intake (1.6-2.2g per kg of body weight)\n2. Adequate calories (slight surplus of 200-300 calories)\n3. Complex carbs for energy (especially around workouts)\n4. Healthy fats for hormonal health\n\nSome great protein options include chicken breast, lean beef, fish, eggs, Greek yogurt, and plant proteins like lentils and tofu. Would you like a sample meal plan?"),
		},
		// Checked before the generic weight-loss rule so that
		// "meal plan for weight loss" gets the meal plan, not the
		// generic advice.
		{
			match: anyOf("meal plan"),
			reply: mealPlanReply,
		},
		{
			match: anyOf("weight loss", "lose weight", "diet"),
			reply: fixed("For healthy weight loss, I recommend:\n\n1. Creating a moderate calorie deficit (300-500 calories below maintenance)\n2. Consuming plenty of protein (helps preserve muscle and increases satiety)\n3. Eating lots of vegetables and fiber-rich foods\n4. Staying hydrated and limiting sugary drinks\n5. Incorporating regular strength training and cardio\n\nWould you like specific food recommendations or a sample weight loss meal plan?"),
		},
		{
			match: anyOf("recipe", "recipes"),
			reply: fixed("Here are three healthy recipe ideas:\n\n1. Mediterranean Bowl: Quinoa base with roasted chickpeas, cherry tomatoes, cucumber, feta cheese, and olive oil dressing\n\n2. Sheet Pan Dinner: Chicken thighs, sweet potatoes, and Brussels sprouts roasted with herbs and olive oil\n\n3. Protein Breakfast: Greek yogurt parfait with layers of berries, honey, and homemade granola\n\nWhich of these interests you? I can provide detailed instructions for any of them."),
		},
		{
			match: anyOf("calories", "calorie"),
			reply: fixed("The number of calories you need depends on your gender, weight, height, age, and activity level. As a general guideline, most women need 1,600-2,400 calories per day, while most men need 2,000-3,000 calories per day. Would you like me to help calculate your specific needs based on your information?"),
		},
		{
			match: anyOf("protein", "macro", "macros"),
			reply: fixed("For a balanced diet, the recommended macronutrient breakdown is:\n\n- Protein: 10-35% of daily calories (0.8-2.2g per kg of body weight)\n- Carbohydrates: 45-65% of daily calories\n- Fats: 20-35% of daily calories\n\nFor active individuals or those looking to build muscle, aim for the higher end of the protein range. Would you like more specific macro recommendations based on your goals?"),
		},
		{
			match: anyOf("carbs", "carbohydrates"),
			reply: fixed("Healthy carbohydrate sources include:\n\n1. Whole grains (oats, brown rice, quinoa)\n2. Starchy vegetables (sweet potatoes, squash)\n3. Legumes (beans, lentils)\n4. Fruits\n\nThese provide fiber, vitamins, and minerals unlike refined carbs like white bread and sugary foods. For weight management, focus on portion control and timing (around workouts can be beneficial)."),
		},
		{
			match: anyOf("fat", "fats"),
			reply: fixed("Healthy fat sources include:\n\n1. Avocados\n2. Nuts and seeds\n3. Olive oil and olives\n4. Fatty fish (salmon, mackerel)\n5. Eggs\n\nHealthy fats are essential for hormone production, brain health, and nutrient absorption. They also help you feel satisfied after meals. Aim for mostly unsaturated fats while limiting saturated and trans fats."),
		},
		{
			match: anyOf("vegetarian", "vegan", "plant-based"),
			reply: fixed("For a nutritionally complete plant-based diet, focus on:\n\n1. Protein: Legumes, tofu, tempeh, seitan, and if vegetarian, eggs and dairy\n2. Iron: Lentils, spinach, fortified cereals (pair with vitamin C for better absorption)\n3. B12: Nutritional yeast, fortified foods, or supplements (especially important for vegans)\n4. Calcium: Fortified plant milks, tofu, leafy greens\n5. Omega-3s: Flaxseeds, chia seeds, walnuts\n\nWould you like specific meal ideas or more information on plant-based nutrition?"),
		},
		{
			match: anyOf("water", "hydration", "drink"),
			reply: fixed("Proper hydration is essential for overall health and optimal physical performance. Aim for about 2-3 liters (8-12 cups) of water daily, though needs vary based on activity level, climate, and individual factors. Signs of good hydration include light-colored urine and rarely feeling thirsty. Try carrying a reusable water bottle and setting reminders if you often forget to drink throughout the day."),
		},
		{
			match: anyOf("supplement", "vitamin"),
			reply: fixed("Common supplements that may benefit certain individuals include:\n\n1. Vitamin D: Especially for those with limited sun exposure\n2. Omega-3: If you don't consume fatty fish regularly\n3. Protein: For athletes or those struggling to meet protein needs\n4. Creatine: For enhanced strength performance\n5. Multivitamin: As insurance against dietary gaps\n\nHowever, supplements should complement, not replace, a balanced diet. Always consult with a healthcare provider before starting any supplement regimen."),
		},
		{
			match: anyOf("workout", "exercise"),
			reply: fixed("For optimal nutrition around workouts:\n\n1. Pre-workout (1-3 hours before): Consume easily digestible carbs and moderate protein\n   Example: Banana with Greek yogurt or toast with eggs\n\n2. Post-workout (within 30-60 minutes): Combine protein and carbs for recovery\n   Example: Protein shake with fruit or chicken and rice\n\n3. Stay hydrated before, during, and after exercise\n\nWould you like more specific recommendations based on your workout type or goals?"),
		},
	}
	return n
}

// Reply maps the input to the first matching rule's answer, falling
// back to a generic prompt when nothing matches. Identical input always
// yields identical output.
func (n *Nutritionist) Reply(message string) string {
	msg := strings.ToLower(message)
	for _, r := range n.rules {
		if r.match(msg) {
			return r.reply(msg)
		}
	}
	return "I'm here to help with nutrition advice, meal planning, and healthy eating tips. Feel free to ask specific questions about your diet goals, and I'll do my best to provide personalized guidance. You can ask about topics like weight loss, muscle building, specific nutrients, meal plans, recipes, or supplement advice."
}

// mealPlanReply narrows the meal-plan branch by goal keywords.
func mealPlanReply(msg string) string {
	switch {
	case strings.Contains(msg, "weight loss") || strings.Contains(msg, "diet"):
		return "Sample Weight Loss Meal Plan:\n\nBreakfast: 2 scrambled eggs with spinach and tomatoes, 1 slice whole grain toast\n\nSnack: Apple with 1 tbsp almond butter\n\nLunch: Large salad with 4oz grilled chicken, mixed greens, vegetables, and light vinaigrette\n\nSnack: Greek yogurt with berries\n\nDinner: 4oz baked salmon, 1/2 cup quinoa, roasted Brussels sprouts\n\nThis plan provides around 1,500 calories with plenty of protein and fiber to keep you satisfied. Would you like me to suggest alternative meals?"
	case strings.Contains(msg, "muscle") || strings.Contains(msg, "bulking"):
		return "Sample Muscle Building Meal Plan:\n\nBreakfast: 4 egg omelet with vegetables, 1 cup oatmeal with berries and nuts\n\nSnack: Protein shake with banana and 2 tbsp peanut butter\n\nLunch: 6oz grilled chicken breast, 1 cup brown rice, 1 cup roasted vegetables\n\nPre-workout: Greek yogurt with honey and a piece of fruit\n\nPost-workout: Protein shake with 8oz milk\n\nDinner: 6oz salmon fillet, sweet potato, steamed broccoli\n\nWould you like more high-protein meal options?"
	default:
		return "Sample Balanced Meal Plan:\n\nBreakfast: Overnight oats with Greek yogurt, berries and a tablespoon of chia seeds\n\nLunch: Whole grain wrap with turkey, avocado, and vegetables\n\nSnack: Handful of mixed nuts and an apple\n\nDinner: Stir-fry with tofu or chicken, plenty of colorful vegetables, and brown rice\n\nThis balanced plan provides a good mix of proteins, complex carbs, and healthy fats. Would you like me to customize it based on your specific goals?"
	}
}

func anyOf(keywords ...string) func(string) bool {
	return func(msg string) bool {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	}
}

func fixed(answer string) func(string) string {
	return func(string) string { return answer }
}
