package memory

import (
	"github.com/team-oshsharohi/roster-service/internal/domain/member"
	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
)

const (
	SubteamLeadership   = "Leadership"
	SubteamElectronics  = "Electronics & Powertrain"
	SubteamBusiness     = "Business & Marketing"
	SubteamChassis      = "Chassis & Suspension"
	SubteamAerodynamics = "Aerodynamics & Ergonomics"
)

// SeedMembers returns the published roster in listed order. This is the sole
// source of member rows: the seed procedure writes it to sqlite and the client
// fallback snapshot is derived from it.
func SeedMembers() []member.Member {
	return []member.Member{
		{
			Name:         "Tajbir Ahmed",
			Role:         "TEAM LEAD",
			Title:        "Project Director",
			Description:  "Leading Team OSHSHAROHI towards engineering excellence and racing glory. Tajbir brings vision, leadership, and unwavering dedication to push the boundaries of what our team can achieve.",
			Subteam:      SubteamLeadership,
			Color:        "brand-red",
			ImagePath:    "/assets/tajbir-ahmed.jpg",
			DisplayOrder: 1,
		},
		{
			Name:         "Mahir Dyan",
			Role:         "CO-TEAM LEAD",
			Title:        "Deputy Project Director",
			Description:  "Driving innovation and coordination across all team divisions. Mahir ensures seamless collaboration and operational excellence throughout the organization.",
			Subteam:      SubteamLeadership,
			Color:        "orange-500",
			ImagePath:    "/assets/mahir-dyan.jpg",
			DisplayOrder: 2,
		},
		{
			Name:         "Md. Shafinuzzaman",
			Role:         "ELECTRONICS & POWERTRAIN",
			Title:        "Electronics, Powertrain & Drivetrain",
			Description:  "Optimizing the energy flow and power delivery systems. Shafinuzzaman brings technical expertise in mechatronics and mechanical engineering to ensure peak performance.",
			Subteam:      SubteamElectronics,
			Color:        "blue-500",
			ImagePath:    "/assets/shafinuzzaman.jpg",
			DisplayOrder: 1,
		},
		{
			Name:         "Abrar Bin Zakir",
			Role:         "ELECTRONICS & POWERTRAIN",
			Title:        "Electronics, Powertrain & Drivetrain",
			Description:  "From data acquisition and wiring to engine performance and transmission, Abrar controls the lifeblood of our vehicle with expertise in electronics and powertrain systems.",
			Subteam:      SubteamElectronics,
			Color:        "blue-500",
			ImagePath:    "/assets/abrar-bin-zakir.jpg",
			DisplayOrder: 2,
		},
		{
			Name:         "Moobta Sim Tajwar",
			Role:         "ELECTRONICS & POWERTRAIN",
			Title:        "Electronics, Powertrain & Drivetrain",
			Description:  "Bringing innovation to our powertrain systems. Moobta ensures seamless integration of electronics with mechanical components for optimal performance.",
			Subteam:      SubteamElectronics,
			Color:        "blue-500",
			ImagePath:    "/assets/moobta-sim-tajwar.jpg",
			DisplayOrder: 3,
		},
		{
			Name:         "Nowroz Ahmad",
			Role:         "ELECTRONICS & POWERTRAIN",
			Title:        "Electronics, Powertrain & Drivetrain",
			Description:  "Engineering excellence in drivetrain systems. Nowroz focuses on power transmission and vehicle dynamics to maximize track performance.",
			Subteam:      SubteamElectronics,
			Color:        "blue-500",
			ImagePath:    "/assets/nowroz-ahmad.jpg",
			DisplayOrder: 4,
		},
		{
			Name:         "Md. Jarif Alam",
			Role:         "ELECTRONICS & POWERTRAIN",
			Title:        "Electronics, Powertrain & Drivetrain",
			Description:  "Expertise in electronic control systems and powertrain integration. Jarif brings precision engineering to our vehicle's core systems.",
			Subteam:      SubteamElectronics,
			Color:        "blue-500",
			ImagePath:    "/assets/jarif-alam.jpg",
			DisplayOrder: 5,
		},
		{
			Name:         "S.M. Rafiur Rahman Swapnil",
			Role:         "ELECTRONICS & POWERTRAIN",
			Title:        "Electronics, Powertrain & Drivetrain",
			Description:  "Dedicated to optimizing power delivery and electronic systems. Swapnil brings expertise in mechatronics to enhance our vehicle performance.",
			Subteam:      SubteamElectronics,
			Color:        "blue-500",
			ImagePath:    "/assets/rafiur-rahman-swapnil.jpg",
			DisplayOrder: 6,
		},
		{
			Name:         "Anan Intesar Bin Faiz",
			Role:         "ELECTRONICS & POWERTRAIN",
			Title:        "Electronics, Powertrain & Drivetrain",
			Description:  "From data acquisition and wiring to engine performance and transmission, Anan controls the lifeblood of our vehicle with expertise in electronics and powertrain systems.",
			Subteam:      SubteamElectronics,
			Color:        "blue-500",
			ImagePath:    "/assets/anan-intesar.jpg",
			DisplayOrder: 7,
		},
		{
			Name:         "Ashfia Rahman",
			Role:         "BUSINESS & MARKETING",
			Title:        "Business, Marketing & Logistics",
			Description:  "Driving brand visibility and sponsorship relations. Ashfia brings strategic marketing expertise to elevate Team OSHSHAROHI's presence in the motorsport community.",
			Subteam:      SubteamBusiness,
			Color:        "purple-500",
			ImagePath:    "/assets/ashfia-rahman.jpg",
			DisplayOrder: 1,
		},
		{
			Name:         "Nuzhat Tasnim",
			Role:         "BUSINESS & MARKETING",
			Title:        "Business, Marketing & Logistics",
			Description:  "Managing logistics and event coordination. Nuzhat ensures smooth operations and seamless execution of all team activities and competitions.",
			Subteam:      SubteamBusiness,
			Color:        "purple-500",
			ImagePath:    "/assets/nuzhat-tasnim.jpg",
			DisplayOrder: 2,
		},
		{
			Name:         "Asad Ullah Akib",
			Role:         "BUSINESS & MARKETING",
			Title:        "Business, Marketing & Logistics",
			Description:  "Building partnerships and securing sponsorships. Akib brings business development expertise to fuel our racing ambitions.",
			Subteam:      SubteamBusiness,
			Color:        "purple-500",
			ImagePath:    "/assets/asad-ullah-akib.jpg",
			DisplayOrder: 3,
		},
		{
			Name:         "Proggha Parmita Sakura",
			Role:         "BUSINESS & MARKETING",
			Title:        "Business, Marketing & Logistics",
			Description:  "Leading content creation and social media strategy. Sakura connects our team with fans and supporters through engaging storytelling.",
			Subteam:      SubteamBusiness,
			Color:        "purple-500",
			ImagePath:    "/assets/proggha-parmita-sakura.jpg",
			DisplayOrder: 4,
		},
		{
			Name:         "Kazi Ahnaf Muttaquif Ahmed",
			Role:         "CHASSIS & SUSPENSION",
			Title:        "Chassis and Suspension",
			Description:  "Engineering the structural backbone of our race car. Kazi ensures the chassis provides optimal rigidity and safety while minimizing weight.",
			Subteam:      SubteamChassis,
			Color:        "green-500",
			ImagePath:    "/assets/kazi-ahnaf-muttaquif.jpg",
			DisplayOrder: 1,
		},
		{
			Name:         "Suhail Ashraf",
			Role:         "CHASSIS & SUSPENSION",
			Title:        "Chassis & Suspension",
			Description:  "Designing suspension geometry for maximum grip and handling. Suhail optimizes vehicle dynamics for peak cornering performance.",
			Subteam:      SubteamChassis,
			Color:        "green-500",
			ImagePath:    "/assets/suhail-ashraf.jpg",
			DisplayOrder: 2,
		},
		{
			Name:         "Muhtasim Saad Shameem",
			Role:         "CHASSIS & SUSPENSION",
			Title:        "Chassis & Suspension",
			Description:  "Focused on suspension tuning and ride quality. Muhtasim brings expertise in vehicle dynamics to enhance driver confidence.",
			Subteam:      SubteamChassis,
			Color:        "green-500",
			ImagePath:    "/assets/muhtasim-saad-shameem.jpg",
			DisplayOrder: 3,
		},
		{
			Name:         "Khandkar Sajiduzzaman",
			Role:         "CHASSIS & SUSPENSION",
			Title:        "Chassis & Suspension",
			Description:  "Structural analysis and chassis optimization specialist. Sajiduzzaman ensures our frame meets the highest safety and performance standards.",
			Subteam:      SubteamChassis,
			Color:        "green-500",
			ImagePath:    "/assets/khandkar-sajiduzzaman.jpg",
			DisplayOrder: 4,
		},
		{
			Name:         "Ishmam Mohammed Chowdhury",
			Role:         "AERODYNAMICS & ERGONOMICS",
			Title:        "Aerodynamics & Ergonomics",
			Description:  "Specializing in aerodynamic design and driver comfort. Ishmam optimizes airflow and cockpit ergonomics for peak performance and driver experience.",
			Subteam:      SubteamAerodynamics,
			Color:        "cyan-500",
			ImagePath:    "/assets/ishmam-mohammed-chowdhury.jpg",
			DisplayOrder: 1,
		},
		{
			Name:         "Nafiz Shahriar Sami",
			Role:         "AERODYNAMICS & ERGONOMICS",
			Title:        "Aerodynamics & Ergonomics",
			Description:  "Engineering excellence in downforce and drag optimization. Nafiz brings innovative solutions to maximize vehicle aerodynamic efficiency.",
			Subteam:      SubteamAerodynamics,
			Color:        "cyan-500",
			ImagePath:    "/assets/nafiz-shahriar-sami.jpg",
			DisplayOrder: 2,
		},
		{
			Name:         "Sahil Sajjad",
			Role:         "AERODYNAMICS & ERGONOMICS",
			Title:        "Aerodynamics & Ergonomics",
			Description:  "Focused on CFD analysis and wind tunnel testing. Sahil ensures our aerodynamic package delivers optimal performance on the track.",
			Subteam:      SubteamAerodynamics,
			Color:        "cyan-500",
			ImagePath:    "/assets/sahil-sajjad.jpg",
			DisplayOrder: 3,
		},
		{
			Name:         "Nishat Jahan Nabila",
			Role:         "AERODYNAMICS & ERGONOMICS",
			Title:        "Aerodynamics & Ergonomics",
			Description:  "Expertise in ergonomic design and human factors engineering. Nabila creates driver interfaces that enhance control and reduce fatigue.",
			Subteam:      SubteamAerodynamics,
			Color:        "cyan-500",
			ImagePath:    "/assets/nishat-jahan-nabila.jpg",
			DisplayOrder: 4,
		},
		{
			Name:         "Maruf Mahmud",
			Role:         "AERODYNAMICS & ERGONOMICS",
			Title:        "Aerodynamics & Ergonomics",
			Description:  "Dedicated to aerodynamic component design and testing. Maruf brings precision engineering to wings, diffusers, and body panels.",
			Subteam:      SubteamAerodynamics,
			Color:        "cyan-500",
			ImagePath:    "/assets/maruf-mahmud.jpg",
			DisplayOrder: 5,
		},
	}
}

// SeedSubTeams returns the published sub-team divisions in listed order.
func SeedSubTeams() []subteam.SubTeam {
	return []subteam.SubTeam{
		{
			ID:           "chassis",
			Name:         "Chassis & Aero",
			Icon:         "Wind",
			Description:  "Designing the aerodynamic shell and structural integrity of our vehicles for maximum efficiency and speed.",
			Goals:        []string{"Reduce drag coefficient by 15%", "Optimize chassis weight using carbon fiber composites"},
			Achievements: []string{"Best Aerodynamic Design Award 2023", "Built ultra-lightweight monocoque frame"},
		},
		{
			ID:           "powertrain",
			Name:         "Powertrain",
			Icon:         "Zap",
			Description:  "Developing high-performance electric drive systems and battery management solutions.",
			Goals:        []string{"Increase battery efficiency by 20%", "Develop custom motor controller"},
			Achievements: []string{"Fastest Acceleration Record (Student Category)", "Implemented regenerative braking system"},
		},
		{
			ID:           "dynamics",
			Name:         "Vehicle Dynamics",
			Icon:         "Activity",
			Description:  "Fine-tuning suspension, steering, and braking systems for superior handling and control.",
			Goals:        []string{"Implement active suspension system", "Optimize tire wear patterns"},
			Achievements: []string{"Best Handling Vehicle 2022", "Zero failure rate in endurance testing"},
		},
		{
			ID:           "autonomous",
			Name:         "Autonomous Sys",
			Icon:         "Cpu",
			Description:  "Integrating AI and sensor fusion for self-driving capabilities and driver assistance.",
			Goals:        []string{"Level 3 Autonomous navigation", "Real-time obstacle avoidance integration"},
			Achievements: []string{"Successful track mapping using LIDAR", "Automated parking system demo"},
		},
		{
			ID:           "management",
			Name:         "Management",
			Icon:         "Briefcase",
			Description:  "Handling logistics, sponsorship, marketing, and team operations.",
			Goals:        []string{"Secure 3 major sponsorships", "Expand outreach to 5 universities"},
			Achievements: []string{"Raised 100k BDT in funding", "Featured in national daily newspaper"},
		},
		{
			ID:           "rnd",
			Name:         "R&D",
			Icon:         "FlaskConical",
			Description:  "Researching sustainable materials and future automotive technologies.",
			Goals:        []string{"Prototype hydrogen fuel cell", "Recycled material implementation"},
			Achievements: []string{"Published paper on sustainable composites", "Patent pending for new alloy"},
		},
	}
}
