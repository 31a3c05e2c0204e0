package portfolio

var (
	AboutMe = `M.S. ECE candidate at UW–Madison building acceleration stacks that turn silicon
	into lightning. Most of my work sits where machine learning meets the hardware it runs on:
	tuning GPU kernels, predicting how task graphs should be split, and writing the RTL
	underneath it all.`

	Tagline = `Architecting intelligent hardware at the intersection of AI, ML, and
	high-performance compute.`
)

// DefaultContent is the content served when nothing else is configured. The
// profile links are filled in from configuration by the caller.
func DefaultContent() Content {
	return Content{
		Profile: Profile{
			Name:     "Harshith Kantamneni",
			Initials: "HK",
			Tagline:  Tagline,
			About:    AboutMe,
		},
		Projects:       defaultProjects(),
		Certifications: defaultCertifications(),
		Skills:         defaultSkills(),
	}
}

func defaultProjects() []Project {
	return []Project{
		{
			ID:       1,
			Title:    "ML-Guided CUDA Kernel Configuration",
			Category: CategoryGPU,
			Tech:     []string{"CUDA", "PyTorch", "Slurm"},
			Bullets: []string{
				"PyTorch MLP predicts grid / block sizes on-the-fly, boosting GEMM throughput 30% on A100 GPUs.",
				"One inference call replaces exhaustive grid-search and cuts kernel-tuning time by over 95%.",
				"Deployed cluster-wide via Slurm; forked by peers for benchmark suites.",
			},
			Link: "https://github.com/Drogon4231/Ml-Guided-CUDA-Config",
		},
		{
			ID:       2,
			Title:    "TDG Partition Size Prediction",
			Category: CategoryArch,
			Tech:     []string{"XGBoost", "Python", "scikit-learn"},
			Bullets: []string{
				"XGBoost regressor with under 5% MAE predicts runtime-optimal partition sizes for 2,000 task graphs.",
				"Speeds the simulation pipeline 25% vs. exhaustive sweeps; nightly CI is now feasible.",
				"Packaged as a Python API + CLI; adopted by future ECE 757 cohorts.",
			},
			Link: "https://github.com/Drogon4231/ML-Partition-Predictor",
		},
		{
			ID:       3,
			Title:    "5-Stage Pipelined RISC Processor (WISC-F24)",
			Category: CategoryArch,
			Tech:     []string{"Verilog", "ModelSim"},
			Bullets: []string{
				"Hazard-free pipeline in Verilog with full forwarding & branch prediction.",
				"100% instruction coverage in ModelSim with a cycle-accurate testbench.",
			},
			Link: "#",
		},
		{
			ID:       4,
			Title:    "Knight’s Tour FSM on FPGA",
			Category: CategoryRTL,
			Tech:     []string{"SystemVerilog", "Xilinx Vivado", "UART / SPI"},
			Bullets: []string{
				"Pipelined state machine synthesizes to 333 MHz on Artix-7 (Vivado).",
				"Bluetooth-controlled via a custom UART / SPI bridge.",
			},
			Link: "#",
		},
		{
			ID:       5,
			Title:    "Embedded CO / CO₂ Monitoring System",
			Category: CategoryEmbedded,
			Tech:     []string{"FreeRTOS", "PSoC 6", "Altium Designer"},
			Bullets: []string{
				"FreeRTOS app on PSoC 6 reading SCD41 & MQ-7 via I²C / ADC.",
				"Four-layer Altium PCB streams real-time data over Ethernet.",
			},
			Link: "#",
		},
	}
}

func defaultCertifications() []Certification {
	return []Certification{
		{
			Title:    "Fundamentals of Accelerated Computing with CUDA C/C++",
			Subtitle: "NVIDIA Deep Learning Institute",
			Year:     2024,
			Link:     "https://learn.nvidia.com/certificates",
		},
		{
			Title:    "Computer Architecture",
			Subtitle: "Princeton University (Coursera)",
			Year:     2023,
		},
	}
}

func defaultSkills() []SkillBucket {
	return []SkillBucket{
		{Title: "Hardware / RTL", Items: []string{"Verilog / SystemVerilog", "Synopsys Design Compiler", "Static Timing Analysis"}},
		{Title: "EDA / FPGA Tools", Items: []string{"ModelSim", "Intel Quartus", "Xilinx Vivado"}},
		{Title: "Acceleration / GPUs", Items: []string{"CUDA"}},
		{Title: "ML Frameworks", Items: []string{"PyTorch", "XGBoost", "scikit-learn"}},
		{Title: "Languages / Systems", Items: []string{"C", "C++17", "Python", "Bash", "OpenMP"}},
		{Title: "Embedded / PCB", Items: []string{"Altium Designer", "PSoC 6", "I²C / SPI / UART / CAN"}},
	}
}
