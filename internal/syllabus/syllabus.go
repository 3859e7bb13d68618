package syllabus

import "encoding/json"

// Topic describes one lab experiment of the course.
type Topic struct {
	Ordinal  int      `json:"experiment"`
	Title    string   `json:"title"`
	Summary  string   `json:"theory"`
	LabTasks []string `json:"labTasks"`
}

type CourseInfo struct {
	Code  string
	Name  string
	Units int
}

var Course = CourseInfo{
	Code:  "CSEG1126",
	Name:  "Linux Lab",
	Units: 12,
}

// DefaultSystemPrompt is used when no SYSTEM_PROMPT_PATH override is set.
const DefaultSystemPrompt = `You are an expert Linux Tutor for a student taking the CSEG1126 Linux Lab course.
The syllabus includes:
1. Installation (VMware/VirtualBox)
2. Basic Commands (ls, cd, cp, mv, rm, nano, vim)
3. Permissions (chmod, chown) & File Ops (tar, grep, find)
4. Shell Scripting Basics (Variables, Math, Input)
5. Conditions (If/Else, Case) & Arrays
6. Loops (For, While, Until) & Functions
7. Process Management (ps, top, kill)
8. System Monitoring (df, free, uptime)
9. Advanced Scripting (File checks, String ops)
10. Expert System Logic (Rule-based scripts).

When asked, provide clear, concise, and academic-level explanations suitable for a university lab exam.
If asked for code, provide valid BASH scripts.
If asked for MCQs, format them as JSON.`

var Topics = []Topic{
	{
		Ordinal: 1,
		Title:   "Install virtual player and Linux",
		Summary: "History of UNIX, The UNIX philosophy, GUI, Overview of the Linux OS, Unix commands, Introduction to VI editor.",
		LabTasks: []string{
			"Install VMware Workstation 15 Player or VirtualBox.",
			"Download an installation .iso for a Linux distribution (Ubuntu/Fedora).",
			"Install the .iso from the virtual VBox or VMware Workstation.",
			"Complete VM setup (RAM, storage, user creation).",
		},
	},
	{
		Ordinal: 2,
		Title:   "Practice some basic commands on Linux",
		Summary: "File systems, permissions, ownership, text editors.",
		LabTasks: []string{
			"Navigation: ls, cd, pwd, mkdir, rmdir.",
			"File Ops: touch, cp, mv, rm.",
			"Viewing/Editing: cat, less, more, head, tail, nano, vim.",
		},
	},
	{
		Ordinal: 3,
		Title:   "Files and Directories commands",
		Summary: "File Manipulation, Compression, Archiving, Searching.",
		LabTasks: []string{
			"Timestamps/Create: touch.",
			"Permissions: ls -l, chmod, chown, chgrp.",
			"Advanced: find, grep, tar, gzip/gunzip, ln (hard/soft links).",
		},
	},
	{
		Ordinal: 4,
		Title:   "Shell Programming (Basics)",
		Summary: "BASH scripting intro, variables, keywords, operators.",
		LabTasks: []string{
			"Print 'Hello, World!'.",
			"Prompt user for name and greet.",
			"Arithmetic operations (add, sub, mul, div) on two inputs.",
			"Voting eligibility check (age input).",
		},
	},
	{
		Ordinal: 5,
		Title:   "Shell Programming (Conditionals)",
		Summary: "Command Line Args, Arrays, If-Else, Decision Making.",
		LabTasks: []string{
			"Check if a number is Prime.",
			"Calculate sum of digits of a number.",
			"Check if a number is Armstrong.",
		},
	},
	{
		Ordinal: 6,
		Title:   "Shell Programming (Loops)",
		Summary: "Loops, Loop control, IO Redirections, Functions.",
		LabTasks: []string{
			"Check Palindrome number.",
			"Calculate GCD and LCM.",
			"Sort numbers in ascending/descending order.",
		},
	},
	{
		Ordinal: 7,
		Title:   "Shell Programming (Process)",
		Summary: "Processes, Hierarchy, Management (kill, top), Scheduling.",
		LabTasks: []string{
			"Check file existence; create if missing.",
			"Print 1-10 using loop.",
			"Count lines, words, chars in a file (file arg).",
			"Factorial function.",
		},
	},
	{
		Ordinal: 8,
		Title:   "Shell Programming (System Monitoring)",
		Summary: "Signals, Resource Usage, Logging.",
		LabTasks: []string{
			"Check file permissions (r/w/x).",
			"String operations (length, concat, compare).",
			"Search pattern in file (grep usage in script).",
			"System info: date, logged-in users, uptime.",
		},
	},
	{
		Ordinal: 9,
		Title:   "Shell Programming (File Management)",
		Summary: "System Performance, Security.",
		LabTasks: []string{
			"Rename files with prefix/suffix.",
			"Search files by criteria (ext/size).",
			"Fibonacci series (loop or recursion).",
		},
	},
	{
		Ordinal: 10,
		Title:   "Shell Programming (Modular Code)",
		Summary: "Reusable code, Optimization.",
		LabTasks: []string{
			"Calculate string length.",
			"Reverse a string.",
			"Concatenate two strings.",
		},
	},
	{
		Ordinal: 11,
		Title:   "Shell Programming (Interaction)",
		Summary: "Interactive scripts, Parsing Data.",
		LabTasks: []string{
			"Split sentence into words.",
			"Check string Palindrome.",
		},
	},
	{
		Ordinal: 12,
		Title:   "Building a Rule-Based Expert System",
		Summary: "Process Automation, Daemons.",
		LabTasks: []string{
			"Create 'expert_system.sh'.",
			"Implement if-elif-else rules (e.g., medical symptoms).",
			"Prompt user, evaluate rules, give recommendation.",
		},
	},
}

// DomainContext serializes the full syllabus for inclusion in
// generation prompts.
func DomainContext() string {
	b, err := json.Marshal(Topics)
	if err != nil {
		// Topics is static data; marshaling it cannot fail.
		panic(err)
	}
	return string(b)
}

// TopicByOrdinal returns the topic with the given experiment number,
// or false if out of range.
func TopicByOrdinal(n int) (Topic, bool) {
	for _, t := range Topics {
		if t.Ordinal == n {
			return t, true
		}
	}
	return Topic{}, false
}
