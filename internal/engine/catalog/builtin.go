// internal/engine/catalog/builtin.go
package catalog

import "fitplan-engine/internal/plan"

func ex(name string, focus plan.FocusArea, level plan.FitnessLevel, sets int, reps string, rest int, cues string) plan.Exercise {
	return plan.Exercise{Name: name, Focus: focus, Level: level, Sets: sets, Reps: reps, RestSeconds: rest, FormCues: cues}
}

func meal(name string, mealType plan.MealType, level plan.FitnessLevel, calories, protein, carbs, fats, fiber float64, prep string, tags ...string) plan.MealItem {
	return plan.MealItem{Name: name, Type: mealType, Level: level, Calories: calories, Protein: protein, Carbs: carbs, Fats: fats, Fiber: fiber, Preparation: prep, Tags: tags}
}

var builtinExercises = map[plan.FocusArea]map[plan.FitnessLevel][]plan.Exercise{
	plan.FocusFullBody: {
		plan.LevelBeginner: {
			ex("Bodyweight Squats", plan.FocusFullBody, plan.LevelBeginner, 3, "12-15", 60, "Chest up, knees tracking over toes"),
			ex("Incline Push-Ups", plan.FocusFullBody, plan.LevelBeginner, 3, "8-12", 60, "Hands on bench, body in one line"),
			ex("Glute Bridges", plan.FocusFullBody, plan.LevelBeginner, 3, "12-15", 45, "Squeeze glutes at the top"),
			ex("Jumping Jacks", plan.FocusFullBody, plan.LevelBeginner, 3, "30s", 45, "Soft landings, steady rhythm"),
			ex("Plank", plan.FocusFullBody, plan.LevelBeginner, 3, "30s", 60, "Hips level, don't sag"),
		},
		plan.LevelIntermediate: {
			ex("Goblet Squats", plan.FocusFullBody, plan.LevelIntermediate, 4, "10-12", 75, "Dumbbell at chest, sit between hips"),
			ex("Push-Ups", plan.FocusFullBody, plan.LevelIntermediate, 4, "10-15", 60, "Full range, elbows at 45 degrees"),
			ex("Dumbbell Rows", plan.FocusFullBody, plan.LevelIntermediate, 4, "10-12", 75, "Flat back, pull to hip"),
			ex("Burpees", plan.FocusFullBody, plan.LevelIntermediate, 3, "10-12", 75, "Step or jump back with control"),
			ex("Walking Lunges", plan.FocusFullBody, plan.LevelIntermediate, 3, "10/leg", 75, "Torso tall, knee soft at bottom"),
		},
		plan.LevelAdvanced: {
			ex("Barbell Back Squats", plan.FocusFullBody, plan.LevelAdvanced, 4, "6-8", 120, "Brace before descending"),
			ex("Deadlifts", plan.FocusFullBody, plan.LevelAdvanced, 4, "5-6", 150, "Bar over mid-foot, lats tight"),
			ex("Pull-Ups", plan.FocusFullBody, plan.LevelAdvanced, 4, "6-10", 90, "Full hang to chin over bar"),
			ex("Barbell Overhead Press", plan.FocusFullBody, plan.LevelAdvanced, 4, "6-8", 90, "Glutes tight, no back lean"),
			ex("Kettlebell Swings", plan.FocusFullBody, plan.LevelAdvanced, 4, "15-20", 75, "Hinge, don't squat"),
		},
	},
	plan.FocusUpperBody: {
		plan.LevelBeginner: {
			ex("Incline Push-Ups", plan.FocusUpperBody, plan.LevelBeginner, 3, "8-12", 60, "Hands on bench, body in one line"),
			ex("Band Pull-Aparts", plan.FocusUpperBody, plan.LevelBeginner, 3, "12-15", 45, "Squeeze shoulder blades together"),
			ex("Dumbbell Shoulder Press", plan.FocusUpperBody, plan.LevelBeginner, 3, "10-12", 60, "Light weight, full lockout"),
			ex("Wall Push-Ups", plan.FocusUpperBody, plan.LevelBeginner, 3, "12-15", 45, "Step back to increase difficulty"),
		},
		plan.LevelIntermediate: {
			ex("Push-Ups", plan.FocusUpperBody, plan.LevelIntermediate, 4, "10-15", 60, "Full range, elbows at 45 degrees"),
			ex("Dumbbell Bench Press", plan.FocusUpperBody, plan.LevelIntermediate, 4, "8-12", 75, "Control the descent"),
			ex("Dumbbell Rows", plan.FocusUpperBody, plan.LevelIntermediate, 4, "10-12", 75, "Flat back, pull to hip"),
			ex("Lateral Raises", plan.FocusUpperBody, plan.LevelIntermediate, 3, "12-15", 60, "Lead with elbows, no swing"),
		},
		plan.LevelAdvanced: {
			ex("Weighted Pull-Ups", plan.FocusUpperBody, plan.LevelAdvanced, 4, "5-8", 120, "Dead hang start every rep"),
			ex("Barbell Bench Press", plan.FocusUpperBody, plan.LevelAdvanced, 4, "6-8", 120, "Feet planted, slight arch"),
			ex("Barbell Rows", plan.FocusUpperBody, plan.LevelAdvanced, 4, "6-10", 90, "Hinge to 45 degrees, pull to sternum"),
			ex("Dips", plan.FocusUpperBody, plan.LevelAdvanced, 4, "8-12", 90, "Lean forward for chest emphasis"),
		},
	},
	plan.FocusLowerBody: {
		plan.LevelBeginner: {
			ex("Bodyweight Squats", plan.FocusLowerBody, plan.LevelBeginner, 3, "12-15", 60, "Chest up, knees tracking over toes"),
			ex("Glute Bridges", plan.FocusLowerBody, plan.LevelBeginner, 3, "12-15", 45, "Squeeze glutes at the top"),
			ex("Step-Ups", plan.FocusLowerBody, plan.LevelBeginner, 3, "10/leg", 60, "Drive through the lead heel"),
			ex("Standing Calf Raises", plan.FocusLowerBody, plan.LevelBeginner, 3, "15-20", 45, "Pause at the top"),
		},
		plan.LevelIntermediate: {
			ex("Goblet Squats", plan.FocusLowerBody, plan.LevelIntermediate, 4, "10-12", 75, "Dumbbell at chest, sit between hips"),
			ex("Romanian Deadlifts", plan.FocusLowerBody, plan.LevelIntermediate, 4, "10-12", 90, "Hips back, soft knees, flat back"),
			ex("Walking Lunges", plan.FocusLowerBody, plan.LevelIntermediate, 3, "10/leg", 75, "Torso tall, knee soft at bottom"),
			ex("Jump Squats", plan.FocusLowerBody, plan.LevelIntermediate, 3, "8-10", 90, "Land soft, reset each rep"),
		},
		plan.LevelAdvanced: {
			ex("Barbell Back Squats", plan.FocusLowerBody, plan.LevelAdvanced, 4, "6-8", 120, "Brace before descending"),
			ex("Deadlifts", plan.FocusLowerBody, plan.LevelAdvanced, 4, "5-6", 150, "Bar over mid-foot, lats tight"),
			ex("Bulgarian Split Squats", plan.FocusLowerBody, plan.LevelAdvanced, 4, "8-10/leg", 90, "Rear foot elevated, drop straight down"),
			ex("Hip Thrusts", plan.FocusLowerBody, plan.LevelAdvanced, 4, "8-12", 90, "Chin tucked, full hip extension"),
		},
	},
	plan.FocusChestTriceps: {
		plan.LevelBeginner: {
			ex("Incline Push-Ups", plan.FocusChestTriceps, plan.LevelBeginner, 3, "8-12", 60, "Hands on bench, body in one line"),
			ex("Wall Push-Ups", plan.FocusChestTriceps, plan.LevelBeginner, 3, "12-15", 45, "Step back to increase difficulty"),
			ex("Bench Dips", plan.FocusChestTriceps, plan.LevelBeginner, 3, "8-12", 60, "Shoulders down, elbows point back"),
			ex("Dumbbell Floor Press", plan.FocusChestTriceps, plan.LevelBeginner, 3, "10-12", 60, "Elbows stop at the floor"),
		},
		plan.LevelIntermediate: {
			ex("Dumbbell Bench Press", plan.FocusChestTriceps, plan.LevelIntermediate, 4, "8-12", 75, "Control the descent"),
			ex("Push-Ups", plan.FocusChestTriceps, plan.LevelIntermediate, 4, "10-15", 60, "Full range, elbows at 45 degrees"),
			ex("Overhead Triceps Extensions", plan.FocusChestTriceps, plan.LevelIntermediate, 3, "10-12", 60, "Elbows tucked, stretch at the bottom"),
			ex("Incline Dumbbell Press", plan.FocusChestTriceps, plan.LevelIntermediate, 4, "8-12", 75, "Bench at 30 degrees"),
		},
		plan.LevelAdvanced: {
			ex("Barbell Bench Press", plan.FocusChestTriceps, plan.LevelAdvanced, 4, "6-8", 120, "Feet planted, slight arch"),
			ex("Dips", plan.FocusChestTriceps, plan.LevelAdvanced, 4, "8-12", 90, "Lean forward for chest emphasis"),
			ex("Close-Grip Bench Press", plan.FocusChestTriceps, plan.LevelAdvanced, 4, "6-10", 90, "Hands shoulder width, elbows tucked"),
			ex("Cable Flyes", plan.FocusChestTriceps, plan.LevelAdvanced, 3, "10-12", 75, "Slight elbow bend, hug a barrel"),
		},
	},
	plan.FocusBackBiceps: {
		plan.LevelBeginner: {
			ex("Band Pull-Aparts", plan.FocusBackBiceps, plan.LevelBeginner, 3, "12-15", 45, "Squeeze shoulder blades together"),
			ex("Seated Band Rows", plan.FocusBackBiceps, plan.LevelBeginner, 3, "12-15", 60, "Pull to ribs, pause"),
			ex("Dumbbell Curls", plan.FocusBackBiceps, plan.LevelBeginner, 3, "10-12", 60, "No swing, full extension"),
			ex("Superman Holds", plan.FocusBackBiceps, plan.LevelBeginner, 3, "20s", 45, "Lift chest and thighs together"),
		},
		plan.LevelIntermediate: {
			ex("Dumbbell Rows", plan.FocusBackBiceps, plan.LevelIntermediate, 4, "10-12", 75, "Flat back, pull to hip"),
			ex("Lat Pulldowns", plan.FocusBackBiceps, plan.LevelIntermediate, 4, "10-12", 75, "Drive elbows down and back"),
			ex("Hammer Curls", plan.FocusBackBiceps, plan.LevelIntermediate, 3, "10-12", 60, "Neutral grip, elbows pinned"),
			ex("Inverted Rows", plan.FocusBackBiceps, plan.LevelIntermediate, 4, "8-12", 75, "Body rigid, chest to bar"),
		},
		plan.LevelAdvanced: {
			ex("Pull-Ups", plan.FocusBackBiceps, plan.LevelAdvanced, 4, "6-10", 90, "Full hang to chin over bar"),
			ex("Barbell Rows", plan.FocusBackBiceps, plan.LevelAdvanced, 4, "6-10", 90, "Hinge to 45 degrees, pull to sternum"),
			ex("Barbell Curls", plan.FocusBackBiceps, plan.LevelAdvanced, 4, "8-10", 75, "Elbows still, squeeze at the top"),
			ex("Single-Arm Dumbbell Rows", plan.FocusBackBiceps, plan.LevelAdvanced, 4, "8-10", 90, "Brace on bench, no torso twist"),
		},
	},
	plan.FocusLegs: {
		plan.LevelBeginner: {
			ex("Bodyweight Squats", plan.FocusLegs, plan.LevelBeginner, 3, "12-15", 60, "Chest up, knees tracking over toes"),
			ex("Step-Ups", plan.FocusLegs, plan.LevelBeginner, 3, "10/leg", 60, "Drive through the lead heel"),
			ex("Jump Squats", plan.FocusLegs, plan.LevelBeginner, 3, "8-10", 75, "Land soft, reset each rep"),
			ex("Glute Bridges", plan.FocusLegs, plan.LevelBeginner, 3, "12-15", 45, "Squeeze glutes at the top"),
		},
		plan.LevelIntermediate: {
			ex("Goblet Squats", plan.FocusLegs, plan.LevelIntermediate, 4, "10-12", 75, "Dumbbell at chest, sit between hips"),
			ex("Romanian Deadlifts", plan.FocusLegs, plan.LevelIntermediate, 4, "10-12", 90, "Hips back, soft knees, flat back"),
			ex("Walking Lunges", plan.FocusLegs, plan.LevelIntermediate, 3, "10/leg", 75, "Torso tall, knee soft at bottom"),
			ex("Leg Press", plan.FocusLegs, plan.LevelIntermediate, 4, "10-12", 90, "Knees track over toes, full depth"),
		},
		plan.LevelAdvanced: {
			ex("Barbell Back Squats", plan.FocusLegs, plan.LevelAdvanced, 4, "6-8", 120, "Brace before descending"),
			ex("Bulgarian Split Squats", plan.FocusLegs, plan.LevelAdvanced, 4, "8-10/leg", 90, "Rear foot elevated, drop straight down"),
			ex("Hip Thrusts", plan.FocusLegs, plan.LevelAdvanced, 4, "8-12", 90, "Chin tucked, full hip extension"),
			ex("Front Squats", plan.FocusLegs, plan.LevelAdvanced, 4, "6-8", 120, "Elbows high, upright torso"),
		},
	},
	plan.FocusShouldersCore: {
		plan.LevelBeginner: {
			ex("Dumbbell Shoulder Press", plan.FocusShouldersCore, plan.LevelBeginner, 3, "10-12", 60, "Light weight, full lockout"),
			ex("Plank", plan.FocusShouldersCore, plan.LevelBeginner, 3, "30s", 60, "Hips level, don't sag"),
			ex("Dead Bugs", plan.FocusShouldersCore, plan.LevelBeginner, 3, "8/side", 45, "Low back pressed to floor"),
			ex("Front Raises", plan.FocusShouldersCore, plan.LevelBeginner, 3, "10-12", 45, "To eye level, no swing"),
		},
		plan.LevelIntermediate: {
			ex("Lateral Raises", plan.FocusShouldersCore, plan.LevelIntermediate, 3, "12-15", 60, "Lead with elbows, no swing"),
			ex("Arnold Press", plan.FocusShouldersCore, plan.LevelIntermediate, 4, "8-12", 75, "Rotate palms through the press"),
			ex("Side Planks", plan.FocusShouldersCore, plan.LevelIntermediate, 3, "30s/side", 60, "Stack shoulders, lift hips high"),
			ex("Russian Twists", plan.FocusShouldersCore, plan.LevelIntermediate, 3, "12/side", 45, "Rotate from the ribs, not the arms"),
		},
		plan.LevelAdvanced: {
			ex("Barbell Overhead Press", plan.FocusShouldersCore, plan.LevelAdvanced, 4, "6-8", 90, "Glutes tight, no back lean"),
			ex("Hanging Leg Raises", plan.FocusShouldersCore, plan.LevelAdvanced, 4, "8-12", 90, "No swing, pelvis tucks at the top"),
			ex("Face Pulls", plan.FocusShouldersCore, plan.LevelAdvanced, 3, "12-15", 60, "Pull to forehead, elbows high"),
			ex("Weighted Planks", plan.FocusShouldersCore, plan.LevelAdvanced, 3, "45s", 75, "Plate on mid-back, hips level"),
		},
	},
	plan.FocusCardioCore: {
		plan.LevelBeginner: {
			ex("Jumping Jacks", plan.FocusCardioCore, plan.LevelBeginner, 3, "30s", 45, "Soft landings, steady rhythm"),
			ex("High Knees", plan.FocusCardioCore, plan.LevelBeginner, 3, "30s", 45, "Drive knees to hip height"),
			ex("Mountain Climbers", plan.FocusCardioCore, plan.LevelBeginner, 3, "20s", 60, "Hips low, quick feet"),
			ex("Burpees", plan.FocusCardioCore, plan.LevelBeginner, 3, "6-8", 75, "Step or jump back with control"),
			ex("Plank", plan.FocusCardioCore, plan.LevelBeginner, 3, "30s", 60, "Hips level, don't sag"),
		},
		plan.LevelIntermediate: {
			ex("Burpees", plan.FocusCardioCore, plan.LevelIntermediate, 3, "10-12", 75, "Step or jump back with control"),
			ex("Mountain Climbers", plan.FocusCardioCore, plan.LevelIntermediate, 4, "30s", 60, "Hips low, quick feet"),
			ex("Jump Rope", plan.FocusCardioCore, plan.LevelIntermediate, 4, "60s", 60, "Wrists turn the rope, stay on toes"),
			ex("Bicycle Crunches", plan.FocusCardioCore, plan.LevelIntermediate, 3, "15/side", 45, "Slow, opposite elbow to knee"),
		},
		plan.LevelAdvanced: {
			ex("Burpee Pull-Ups", plan.FocusCardioCore, plan.LevelAdvanced, 4, "8-10", 90, "Full burpee into strict pull-up"),
			ex("Box Jumps", plan.FocusCardioCore, plan.LevelAdvanced, 4, "8-10", 90, "Step down between reps"),
			ex("Kettlebell Swings", plan.FocusCardioCore, plan.LevelAdvanced, 4, "15-20", 75, "Hinge, don't squat"),
			ex("Hanging Leg Raises", plan.FocusCardioCore, plan.LevelAdvanced, 4, "8-12", 90, "No swing, pelvis tucks at the top"),
		},
	},
}

var builtinMeals = map[plan.MealType][]plan.MealItem{
	plan.MealBreakfast: {
		meal("Oatmeal with Berries and Almonds", plan.MealBreakfast, plan.LevelBeginner, 380, 12, 58, 11, 9, "Cook oats in milk, top with berries and almonds", "vegetarian"),
		meal("Greek Yogurt Parfait", plan.MealBreakfast, plan.LevelBeginner, 340, 24, 42, 8, 5, "Layer yogurt with granola and fruit", "vegetarian", "high-protein"),
		meal("Veggie Omelette with Toast", plan.MealBreakfast, plan.LevelIntermediate, 420, 26, 32, 20, 5, "Three-egg omelette with peppers and spinach, whole-grain toast", "vegetarian"),
		meal("Protein Smoothie Bowl", plan.MealBreakfast, plan.LevelIntermediate, 410, 30, 48, 10, 8, "Blend protein powder, banana and oats, top with seeds", "high-protein"),
		meal("Scrambled Eggs with Avocado Toast", plan.MealBreakfast, plan.LevelIntermediate, 460, 22, 36, 25, 8, "Two eggs scrambled, half avocado on whole-grain toast", "vegetarian"),
		meal("Cottage Cheese with Fruit and Walnuts", plan.MealBreakfast, plan.LevelBeginner, 320, 26, 28, 12, 4, "Bowl of cottage cheese with sliced peach and walnuts", "vegetarian", "high-protein"),
		meal("Banana Peanut Butter Overnight Oats", plan.MealBreakfast, plan.LevelBeginner, 440, 16, 60, 15, 8, "Soak oats overnight with milk, banana and peanut butter", "vegetarian"),
		meal("Smoked Salmon Bagel", plan.MealBreakfast, plan.LevelAdvanced, 480, 28, 50, 17, 4, "Whole-grain bagel with cream cheese and smoked salmon", "pescatarian", "high-protein"),
	},
	plan.MealLunch: {
		meal("Grilled Chicken Salad", plan.MealLunch, plan.LevelBeginner, 420, 38, 22, 19, 7, "Grilled chicken breast over mixed greens with olive oil dressing", "high-protein", "low-carb"),
		meal("Turkey and Hummus Wrap", plan.MealLunch, plan.LevelBeginner, 470, 32, 48, 15, 8, "Whole-wheat wrap with turkey, hummus and vegetables", "high-protein"),
		meal("Quinoa Buddha Bowl", plan.MealLunch, plan.LevelIntermediate, 520, 20, 68, 18, 12, "Quinoa with roasted chickpeas, sweet potato and tahini", "vegan", "high-fiber"),
		meal("Tuna Salad Sandwich", plan.MealLunch, plan.LevelBeginner, 450, 30, 44, 16, 6, "Tuna mixed with yogurt on whole-grain bread", "pescatarian", "high-protein"),
		meal("Chicken Burrito Bowl", plan.MealLunch, plan.LevelIntermediate, 580, 40, 62, 18, 11, "Chicken, brown rice, black beans, salsa and a little cheese", "high-protein"),
		meal("Lentil Soup with Whole-Grain Roll", plan.MealLunch, plan.LevelBeginner, 410, 20, 60, 9, 14, "Hearty lentil soup, roll on the side", "vegan", "high-fiber"),
		meal("Salmon Poke Bowl", plan.MealLunch, plan.LevelAdvanced, 560, 34, 58, 20, 7, "Cubed salmon over rice with edamame and cucumber", "pescatarian", "high-protein"),
		meal("Chickpea and Feta Salad", plan.MealLunch, plan.LevelIntermediate, 440, 18, 46, 20, 11, "Chickpeas, feta, tomato and cucumber with lemon dressing", "vegetarian", "high-fiber"),
	},
	plan.MealDinner: {
		meal("Baked Salmon with Roasted Vegetables", plan.MealDinner, plan.LevelIntermediate, 520, 38, 32, 25, 8, "Salmon fillet baked with broccoli, carrots and olive oil", "pescatarian", "high-protein"),
		meal("Chicken Stir-Fry with Brown Rice", plan.MealDinner, plan.LevelBeginner, 540, 40, 58, 14, 7, "Chicken and mixed vegetables stir-fried, served over brown rice", "high-protein"),
		meal("Turkey Chili", plan.MealDinner, plan.LevelBeginner, 480, 36, 46, 15, 13, "Lean ground turkey simmered with beans and tomatoes", "high-protein", "high-fiber"),
		meal("Tofu Curry with Rice", plan.MealDinner, plan.LevelIntermediate, 510, 22, 62, 19, 9, "Tofu in light coconut curry over basmati rice", "vegan"),
		meal("Lean Beef and Sweet Potato", plan.MealDinner, plan.LevelAdvanced, 560, 42, 48, 20, 8, "Sirloin steak with baked sweet potato and green beans", "high-protein"),
		meal("Shrimp Pasta Primavera", plan.MealDinner, plan.LevelIntermediate, 530, 32, 64, 14, 7, "Whole-wheat pasta with shrimp and sautéed vegetables", "pescatarian"),
		meal("Stuffed Bell Peppers", plan.MealDinner, plan.LevelBeginner, 430, 26, 44, 16, 9, "Peppers stuffed with turkey, rice and tomato", "high-protein"),
		meal("Baked Cod with Quinoa", plan.MealDinner, plan.LevelIntermediate, 450, 36, 42, 13, 6, "Cod fillet with lemon, quinoa and asparagus", "pescatarian", "high-protein"),
	},
	plan.MealSnack: {
		meal("Apple with Peanut Butter", plan.MealSnack, plan.LevelBeginner, 200, 5, 26, 10, 5, "Sliced apple with a tablespoon of peanut butter", "vegetarian"),
		meal("Protein Shake", plan.MealSnack, plan.LevelBeginner, 160, 25, 8, 3, 1, "One scoop of whey in water or milk", "high-protein"),
		meal("Trail Mix", plan.MealSnack, plan.LevelIntermediate, 210, 6, 20, 13, 4, "Small handful of nuts, seeds and dried fruit", "vegan"),
		meal("Greek Yogurt with Honey", plan.MealSnack, plan.LevelBeginner, 180, 17, 22, 3, 0, "Plain Greek yogurt with a drizzle of honey", "vegetarian", "high-protein"),
		meal("Hummus with Carrot Sticks", plan.MealSnack, plan.LevelBeginner, 150, 5, 18, 7, 6, "Quarter cup hummus with raw carrots", "vegan", "high-fiber"),
		meal("Hard-Boiled Eggs", plan.MealSnack, plan.LevelBeginner, 140, 12, 1, 10, 0, "Two hard-boiled eggs with a pinch of salt", "vegetarian", "high-protein", "low-carb"),
		meal("Cottage Cheese with Pineapple", plan.MealSnack, plan.LevelIntermediate, 170, 15, 20, 3, 1, "Half cup cottage cheese with pineapple chunks", "vegetarian", "high-protein"),
		meal("Rice Cakes with Almond Butter", plan.MealSnack, plan.LevelIntermediate, 190, 6, 22, 10, 3, "Two rice cakes spread with almond butter", "vegan"),
	},
}

// builtinSubstitutions maps high-impact exercise names to lower-impact
// variants per BMI category. Substitute names never appear as keys, so
// applying the table twice changes nothing.
var builtinSubstitutions = map[plan.BMICategory]map[string]Substitute{
	plan.BMIOverweight: {
		"Jump Squats":       {Name: "Bodyweight Squats", Note: "Lower-impact variant, protects knees"},
		"Burpees":           {Name: "Squat Thrusts", Note: "Omit the jump, step feet back and in"},
		"Jumping Jacks":     {Name: "Step Jacks", Note: "Step side to side instead of jumping"},
		"High Knees":        {Name: "Marching in Place", Note: "Controlled march, knees to hip height"},
		"Box Jumps":         {Name: "Step-Ups", Note: "Step up instead of jumping"},
		"Jump Rope":         {Name: "Brisk Treadmill Walk", Note: "Keep intensity, remove impact"},
		"Mountain Climbers": {Name: "Slow Bird Dogs", Note: "Same core demand without impact"},
	},
	plan.BMIObese: {
		"Jump Squats":       {Name: "Sit-to-Stand Squats", Note: "Use a chair, control the descent"},
		"Burpees":           {Name: "Incline Squat Thrusts", Note: "Hands elevated, step feet back and in"},
		"Jumping Jacks":     {Name: "Step Jacks", Note: "Step side to side instead of jumping"},
		"High Knees":        {Name: "Marching in Place", Note: "Controlled march, knees to hip height"},
		"Box Jumps":         {Name: "Step-Ups", Note: "Step up instead of jumping"},
		"Jump Rope":         {Name: "Brisk Treadmill Walk", Note: "Keep intensity, remove impact"},
		"Mountain Climbers": {Name: "Slow Bird Dogs", Note: "Same core demand without impact"},
		"Walking Lunges":    {Name: "Static Supported Lunges", Note: "Hold support, smaller range"},
	},
	plan.BMIUnderweight: {
		"Burpees":   {Name: "Squat Thrusts", Note: "Conserve energy for strength work"},
		"Jump Rope": {Name: "Easy Cycling", Note: "Keep cardio short and low cost"},
	},
}
