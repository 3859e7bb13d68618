package syllabus

import "lab-tutor/internal/content"

// SeedQuiz returns the bundled question bank used before any generation
// has happened. Identifiers are assigned by the content set on load.
func SeedQuiz() []content.QuizItem {
	return []content.QuizItem{
		{Question: "Which command is used to change the current directory?", Options: []string{"ls", "pwd", "cd", "mkdir"}, CorrectAnswer: 2, Explanation: "'cd' stands for Change Directory."},
		{Question: "What does 'chmod 777 file' do?", Options: []string{"Deletes the file", "Gives full permissions to everyone", "Hides the file", "Makes it read-only"}, CorrectAnswer: 1, Explanation: "7 (rwx) for owner, group, and others."},
		{Question: "Which symbol represents the pipe in Linux?", Options: []string{">", ">>", "|", ";"}, CorrectAnswer: 2, Explanation: "The pipe '|' takes stdout of one command and passes it as stdin to another."},
		{Question: "Which command shows the current working directory?", Options: []string{"whereis", "pwd", "cwd", "dir"}, CorrectAnswer: 1, Explanation: "'pwd' stands for Print Working Directory."},
		{Question: "Which editor is modal?", Options: []string{"Nano", "Gedit", "Vim", "Notepad"}, CorrectAnswer: 2, Explanation: "Vim has different modes: Insert, Command, Visual."},
		{Question: "How do you run a shell script named 'script.sh'?", Options: []string{"run script.sh", "./script.sh", "call script.sh", "exec script.sh"}, CorrectAnswer: 1, Explanation: "./ specifies the current directory. You may also need 'bash script.sh'."},
		{Question: "Which command is used to remove a directory that is NOT empty?", Options: []string{"rmdir", "rm -r", "del", "erase"}, CorrectAnswer: 1, Explanation: "rmdir only removes empty directories. rm -r removes recursively."},
		{Question: "What is the PID of the init/systemd process usually?", Options: []string{"0", "1", "100", "999"}, CorrectAnswer: 1, Explanation: "Init is the parent of all processes and typically has PID 1."},
		{Question: "In a shell script, how do you access the first argument?", Options: []string{"$0", "$1", "$arg1", "#1"}, CorrectAnswer: 1, Explanation: "$0 is the script name, $1 is the first argument."},
		{Question: "Which grep argument makes the search case-insensitive?", Options: []string{"-i", "-c", "-v", "-r"}, CorrectAnswer: 0, Explanation: "-i stands for ignore-case."},
		{Question: "What does 'touch' primarily do?", Options: []string{"Opens a file", "Changes file timestamps/creates empty file", "Deletes a file", "Moves a file"}, CorrectAnswer: 1, Explanation: "Primary use is updating timestamps; side effect is creating empty file if not exists."},
		{Question: "Which loop is best for iterating over a list of items?", Options: []string{"while", "until", "for", "do-while"}, CorrectAnswer: 2, Explanation: "For loops are designed to iterate over lists/arrays."},
		{Question: "What is the outcome of 'echo $$'?", Options: []string{"Prints current user", "Prints Process ID of current shell", "Prints last command status", "Prints nothing"}, CorrectAnswer: 1, Explanation: "$$ is a special variable holding the current Shell PID."},
		{Question: "Which command displays the first 10 lines of a file?", Options: []string{"tail", "top", "head", "start"}, CorrectAnswer: 2, Explanation: "head defaults to 10 lines."},
		{Question: "How do you define a function in bash?", Options: []string{"func name() {}", "name() {}", "function name {}", "Both B and C"}, CorrectAnswer: 3, Explanation: "Both 'name() {}' and 'function name {}' are valid syntax."},
	}
}

// SeedViva returns the bundled oral-exam card bank.
func SeedViva() []content.VivaItem {
	return []content.VivaItem{
		{Question: "What is the Linux Kernel?", Answer: "The core interface between a computer's hardware and its processes. It communicates between the 2, managing resources as efficiently as possible.", Category: content.CategoryBasic},
		{Question: "Explain the difference between soft link and hard link.", Answer: "A hard link is a direct reference to the inode (physical data). If original is deleted, hard link still works. A soft link is a shortcut (path). If original is deleted, soft link breaks.", Category: content.CategoryIntermediate},
		{Question: "What are the three standard streams in Linux?", Answer: "stdin (0), stdout (1), and stderr (2).", Category: content.CategoryBasic},
		{Question: "How do you check memory usage in Linux?", Answer: "Using commands like 'free -h', 'top', 'htop', or reading '/proc/meminfo'.", Category: content.CategoryBasic},
		{Question: "What is a shebang (#!)?", Answer: "It is the first line in a script (e.g., #!/bin/bash) that tells the kernel which interpreter to use to execute the file.", Category: content.CategoryIntermediate},
		{Question: "Explain the 'grep' command.", Answer: "Global Regular Expression Print. It searches files for lines matching a specific pattern.", Category: content.CategoryBasic},
		{Question: "What is the difference between relative and absolute path?", Answer: "Absolute path starts from root (/) e.g., /home/user/file. Relative path starts from current directory e.g., ./file.", Category: content.CategoryBasic},
		{Question: "How do you run a process in the background?", Answer: "Append an ampersand (&) to the end of the command.", Category: content.CategoryIntermediate},
		{Question: "What is the purpose of 'sudo'?", Answer: "SuperUser DO. It allows a permitted user to execute a command as the superuser or another user.", Category: content.CategoryBasic},
		{Question: "Explain the permissions 'drwxr-xr-x'.", Answer: "d=directory. Owner has read/write/execute. Group has read/execute. Others have read/execute.", Category: content.CategoryIntermediate},
		{Question: "What is a daemon?", Answer: "A background process that runs without direct user interaction, often managing services (like httpd, sshd).", Category: content.CategoryAdvanced},
		{Question: "How do you create a variable in Bash?", Answer: "name=value (No spaces around =). Access it using $name.", Category: content.CategoryBasic},
		{Question: "What is the difference between 'wait' and 'sleep'?", Answer: "'sleep' pauses for a specific time. 'wait' pauses until a background process finishes.", Category: content.CategoryAdvanced},
		{Question: "What is a Zombie process?", Answer: "A process that has completed execution but still has an entry in the process table because its parent hasn't read its exit status.", Category: content.CategoryAdvanced},
		{Question: "How do you make a shell script executable?", Answer: "Using 'chmod +x scriptname.sh'.", Category: content.CategoryBasic},
	}
}
