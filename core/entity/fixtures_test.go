package entity_test

const charizardJSON = `{
	"name": "Charizard",
	"trainer": "Leon",
	"typing": ["Fire", "Flying"],
	"weakness": "Rock",
	"role": "Strike",
	"rarity": "5",
	"gender": "Male",
	"otherForms": ["Gigantamax Charizard"],
	"moves": [
		{
			"name": "Blast Burn",
			"type": "Fire",
			"category": "Special",
			"power": {"min_power": 150, "max_power": 180},
			"accuracy": 100,
			"target": "An opponent",
			"cost": 3,
			"uses": null,
			"effect": "Must recharge.",
			"unlock_requirements": []
		},
		{
			"name": "Dragon Claw",
			"type": "Dragon",
			"category": "Physical",
			"power": {"min_power": 95, "max_power": 114},
			"accuracy": 100,
			"target": "An opponent",
			"cost": "",
			"uses": 2,
			"effect": "",
			"unlock_requirements": []
		}
	],
	"syncMove": {
		"name": "Max Wildfire",
		"type": "Fire",
		"category": "Special",
		"power": {"min_power": 200, "max_power": 240},
		"target": "All opponents",
		"effect_tag": "Max",
		"description": "Damages all opponents."
	},
	"passives": [
		{"name": "Sharp Blade 3", "description": "Raises critical rate."},
		{"name": "Unwavering", "description": "Cannot flinch."}
	],
	"stats": {
		"base": [["HP","420"],["ATK","110"],["DEF","90"],["Sp. ATK","330"],["Sp. DEF","90"],["Speed","210"]],
		"max": [["HP","500"],["ATK","130"],["DEF","110"],["Sp. ATK","400"],["Sp. DEF","110"],["Speed","250"],["Bulk","610"]]
	},
	"grid": [
		{"bonus": "+10% HP", "syncOrbCost": "1", "energyCost": "1", "reqSyncLevel": "1", "gridPos": "(0,1)"},
		{"bonus": "Blast Burn: Power ↑ 5- Increases the move's power by 5.", "syncOrbCost": "2", "energyCost": "3", "reqSyncLevel": "2", "gridPos": "(-1,2)"}
	]
}`

const leonJSON = `{
	"name": "Leon",
	"rarity": 5,
	"pokemon": ["Charizard"],
	"pokemonData": [` + charizardJSON + `]
}`
