// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package syscalls

import "golang.org/x/sys/unix"

// unixEntries holds every SYS_* constant golang.org/x/sys/unix defines for
// linux/riscv64.
var unixEntries = []Entry{
	{Name: "io_setup", Number: unix.SYS_IO_SETUP},
	{Name: "io_destroy", Number: unix.SYS_IO_DESTROY},
	{Name: "io_submit", Number: unix.SYS_IO_SUBMIT},
	{Name: "io_cancel", Number: unix.SYS_IO_CANCEL},
	{Name: "io_getevents", Number: unix.SYS_IO_GETEVENTS},
	{Name: "setxattr", Number: unix.SYS_SETXATTR},
	{Name: "lsetxattr", Number: unix.SYS_LSETXATTR},
	{Name: "fsetxattr", Number: unix.SYS_FSETXATTR},
	{Name: "getxattr", Number: unix.SYS_GETXATTR},
	{Name: "lgetxattr", Number: unix.SYS_LGETXATTR},
	{Name: "fgetxattr", Number: unix.SYS_FGETXATTR},
	{Name: "listxattr", Number: unix.SYS_LISTXATTR},
	{Name: "llistxattr", Number: unix.SYS_LLISTXATTR},
	{Name: "flistxattr", Number: unix.SYS_FLISTXATTR},
	{Name: "removexattr", Number: unix.SYS_REMOVEXATTR},
	{Name: "lremovexattr", Number: unix.SYS_LREMOVEXATTR},
	{Name: "fremovexattr", Number: unix.SYS_FREMOVEXATTR},
	{Name: "getcwd", Number: unix.SYS_GETCWD},
	{Name: "lookup_dcookie", Number: unix.SYS_LOOKUP_DCOOKIE},
	{Name: "eventfd2", Number: unix.SYS_EVENTFD2},
	{Name: "epoll_create1", Number: unix.SYS_EPOLL_CREATE1},
	{Name: "epoll_ctl", Number: unix.SYS_EPOLL_CTL},
	{Name: "epoll_pwait", Number: unix.SYS_EPOLL_PWAIT},
	{Name: "dup", Number: unix.SYS_DUP},
	{Name: "dup3", Number: unix.SYS_DUP3},
	{Name: "fcntl", Number: unix.SYS_FCNTL},
	{Name: "inotify_init1", Number: unix.SYS_INOTIFY_INIT1},
	{Name: "inotify_add_watch", Number: unix.SYS_INOTIFY_ADD_WATCH},
	{Name: "inotify_rm_watch", Number: unix.SYS_INOTIFY_RM_WATCH},
	{Name: "ioctl", Number: unix.SYS_IOCTL},
	{Name: "ioprio_set", Number: unix.SYS_IOPRIO_SET},
	{Name: "ioprio_get", Number: unix.SYS_IOPRIO_GET},
	{Name: "flock", Number: unix.SYS_FLOCK},
	{Name: "mknodat", Number: unix.SYS_MKNODAT},
	{Name: "mkdirat", Number: unix.SYS_MKDIRAT},
	{Name: "unlinkat", Number: unix.SYS_UNLINKAT},
	{Name: "symlinkat", Number: unix.SYS_SYMLINKAT},
	{Name: "linkat", Number: unix.SYS_LINKAT},
	{Name: "umount2", Number: unix.SYS_UMOUNT2},
	{Name: "mount", Number: unix.SYS_MOUNT},
	{Name: "pivot_root", Number: unix.SYS_PIVOT_ROOT},
	{Name: "nfsservctl", Number: unix.SYS_NFSSERVCTL},
	{Name: "statfs", Number: unix.SYS_STATFS},
	{Name: "fstatfs", Number: unix.SYS_FSTATFS},
	{Name: "truncate", Number: unix.SYS_TRUNCATE},
	{Name: "ftruncate", Number: unix.SYS_FTRUNCATE},
	{Name: "fallocate", Number: unix.SYS_FALLOCATE},
	{Name: "faccessat", Number: unix.SYS_FACCESSAT},
	{Name: "chdir", Number: unix.SYS_CHDIR},
	{Name: "fchdir", Number: unix.SYS_FCHDIR},
	{Name: "chroot", Number: unix.SYS_CHROOT},
	{Name: "fchmod", Number: unix.SYS_FCHMOD},
	{Name: "fchmodat", Number: unix.SYS_FCHMODAT},
	{Name: "fchownat", Number: unix.SYS_FCHOWNAT},
	{Name: "fchown", Number: unix.SYS_FCHOWN},
	{Name: "openat", Number: unix.SYS_OPENAT},
	{Name: "close", Number: unix.SYS_CLOSE},
	{Name: "vhangup", Number: unix.SYS_VHANGUP},
	{Name: "pipe2", Number: unix.SYS_PIPE2},
	{Name: "quotactl", Number: unix.SYS_QUOTACTL},
	{Name: "getdents64", Number: unix.SYS_GETDENTS64},
	{Name: "lseek", Number: unix.SYS_LSEEK},
	{Name: "read", Number: unix.SYS_READ},
	{Name: "write", Number: unix.SYS_WRITE},
	{Name: "readv", Number: unix.SYS_READV},
	{Name: "writev", Number: unix.SYS_WRITEV},
	{Name: "pread64", Number: unix.SYS_PREAD64},
	{Name: "pwrite64", Number: unix.SYS_PWRITE64},
	{Name: "preadv", Number: unix.SYS_PREADV},
	{Name: "pwritev", Number: unix.SYS_PWRITEV},
	{Name: "sendfile", Number: unix.SYS_SENDFILE},
	{Name: "pselect6", Number: unix.SYS_PSELECT6},
	{Name: "ppoll", Number: unix.SYS_PPOLL},
	{Name: "signalfd4", Number: unix.SYS_SIGNALFD4},
	{Name: "vmsplice", Number: unix.SYS_VMSPLICE},
	{Name: "splice", Number: unix.SYS_SPLICE},
	{Name: "tee", Number: unix.SYS_TEE},
	{Name: "readlinkat", Number: unix.SYS_READLINKAT},
	{Name: "newfstatat", Number: unix.SYS_NEWFSTATAT},
	{Name: "fstat", Number: unix.SYS_FSTAT},
	{Name: "sync", Number: unix.SYS_SYNC},
	{Name: "fsync", Number: unix.SYS_FSYNC},
	{Name: "fdatasync", Number: unix.SYS_FDATASYNC},
	{Name: "sync_file_range", Number: unix.SYS_SYNC_FILE_RANGE},
	{Name: "timerfd_create", Number: unix.SYS_TIMERFD_CREATE},
	{Name: "timerfd_settime", Number: unix.SYS_TIMERFD_SETTIME},
	{Name: "timerfd_gettime", Number: unix.SYS_TIMERFD_GETTIME},
	{Name: "utimensat", Number: unix.SYS_UTIMENSAT},
	{Name: "acct", Number: unix.SYS_ACCT},
	{Name: "capget", Number: unix.SYS_CAPGET},
	{Name: "capset", Number: unix.SYS_CAPSET},
	{Name: "personality", Number: unix.SYS_PERSONALITY},
	{Name: "exit", Number: unix.SYS_EXIT},
	{Name: "exit_group", Number: unix.SYS_EXIT_GROUP},
	{Name: "waitid", Number: unix.SYS_WAITID},
	{Name: "set_tid_address", Number: unix.SYS_SET_TID_ADDRESS},
	{Name: "unshare", Number: unix.SYS_UNSHARE},
	{Name: "futex", Number: unix.SYS_FUTEX},
	{Name: "set_robust_list", Number: unix.SYS_SET_ROBUST_LIST},
	{Name: "get_robust_list", Number: unix.SYS_GET_ROBUST_LIST},
	{Name: "nanosleep", Number: unix.SYS_NANOSLEEP},
	{Name: "getitimer", Number: unix.SYS_GETITIMER},
	{Name: "setitimer", Number: unix.SYS_SETITIMER},
	{Name: "kexec_load", Number: unix.SYS_KEXEC_LOAD},
	{Name: "init_module", Number: unix.SYS_INIT_MODULE},
	{Name: "delete_module", Number: unix.SYS_DELETE_MODULE},
	{Name: "timer_create", Number: unix.SYS_TIMER_CREATE},
	{Name: "timer_gettime", Number: unix.SYS_TIMER_GETTIME},
	{Name: "timer_getoverrun", Number: unix.SYS_TIMER_GETOVERRUN},
	{Name: "timer_settime", Number: unix.SYS_TIMER_SETTIME},
	{Name: "timer_delete", Number: unix.SYS_TIMER_DELETE},
	{Name: "clock_settime", Number: unix.SYS_CLOCK_SETTIME},
	{Name: "clock_gettime", Number: unix.SYS_CLOCK_GETTIME},
	{Name: "clock_getres", Number: unix.SYS_CLOCK_GETRES},
	{Name: "clock_nanosleep", Number: unix.SYS_CLOCK_NANOSLEEP},
	{Name: "syslog", Number: unix.SYS_SYSLOG},
	{Name: "ptrace", Number: unix.SYS_PTRACE},
	{Name: "sched_setparam", Number: unix.SYS_SCHED_SETPARAM},
	{Name: "sched_setscheduler", Number: unix.SYS_SCHED_SETSCHEDULER},
	{Name: "sched_getscheduler", Number: unix.SYS_SCHED_GETSCHEDULER},
	{Name: "sched_getparam", Number: unix.SYS_SCHED_GETPARAM},
	{Name: "sched_setaffinity", Number: unix.SYS_SCHED_SETAFFINITY},
	{Name: "sched_getaffinity", Number: unix.SYS_SCHED_GETAFFINITY},
	{Name: "sched_yield", Number: unix.SYS_SCHED_YIELD},
	{Name: "sched_get_priority_max", Number: unix.SYS_SCHED_GET_PRIORITY_MAX},
	{Name: "sched_get_priority_min", Number: unix.SYS_SCHED_GET_PRIORITY_MIN},
	{Name: "sched_rr_get_interval", Number: unix.SYS_SCHED_RR_GET_INTERVAL},
	{Name: "restart_syscall", Number: unix.SYS_RESTART_SYSCALL},
	{Name: "kill", Number: unix.SYS_KILL},
	{Name: "tkill", Number: unix.SYS_TKILL},
	{Name: "tgkill", Number: unix.SYS_TGKILL},
	{Name: "sigaltstack", Number: unix.SYS_SIGALTSTACK},
	{Name: "rt_sigsuspend", Number: unix.SYS_RT_SIGSUSPEND},
	{Name: "rt_sigaction", Number: unix.SYS_RT_SIGACTION},
	{Name: "rt_sigprocmask", Number: unix.SYS_RT_SIGPROCMASK},
	{Name: "rt_sigpending", Number: unix.SYS_RT_SIGPENDING},
	{Name: "rt_sigtimedwait", Number: unix.SYS_RT_SIGTIMEDWAIT},
	{Name: "rt_sigqueueinfo", Number: unix.SYS_RT_SIGQUEUEINFO},
	{Name: "rt_sigreturn", Number: unix.SYS_RT_SIGRETURN},
	{Name: "setpriority", Number: unix.SYS_SETPRIORITY},
	{Name: "getpriority", Number: unix.SYS_GETPRIORITY},
	{Name: "reboot", Number: unix.SYS_REBOOT},
	{Name: "setregid", Number: unix.SYS_SETREGID},
	{Name: "setgid", Number: unix.SYS_SETGID},
	{Name: "setreuid", Number: unix.SYS_SETREUID},
	{Name: "setuid", Number: unix.SYS_SETUID},
	{Name: "setresuid", Number: unix.SYS_SETRESUID},
	{Name: "getresuid", Number: unix.SYS_GETRESUID},
	{Name: "setresgid", Number: unix.SYS_SETRESGID},
	{Name: "getresgid", Number: unix.SYS_GETRESGID},
	{Name: "setfsuid", Number: unix.SYS_SETFSUID},
	{Name: "setfsgid", Number: unix.SYS_SETFSGID},
	{Name: "times", Number: unix.SYS_TIMES},
	{Name: "setpgid", Number: unix.SYS_SETPGID},
	{Name: "getpgid", Number: unix.SYS_GETPGID},
	{Name: "getsid", Number: unix.SYS_GETSID},
	{Name: "setsid", Number: unix.SYS_SETSID},
	{Name: "getgroups", Number: unix.SYS_GETGROUPS},
	{Name: "setgroups", Number: unix.SYS_SETGROUPS},
	{Name: "uname", Number: unix.SYS_UNAME},
	{Name: "sethostname", Number: unix.SYS_SETHOSTNAME},
	{Name: "setdomainname", Number: unix.SYS_SETDOMAINNAME},
	{Name: "getrlimit", Number: unix.SYS_GETRLIMIT},
	{Name: "setrlimit", Number: unix.SYS_SETRLIMIT},
	{Name: "getrusage", Number: unix.SYS_GETRUSAGE},
	{Name: "umask", Number: unix.SYS_UMASK},
	{Name: "prctl", Number: unix.SYS_PRCTL},
	{Name: "getcpu", Number: unix.SYS_GETCPU},
	{Name: "gettimeofday", Number: unix.SYS_GETTIMEOFDAY},
	{Name: "settimeofday", Number: unix.SYS_SETTIMEOFDAY},
	{Name: "adjtimex", Number: unix.SYS_ADJTIMEX},
	{Name: "getpid", Number: unix.SYS_GETPID},
	{Name: "getppid", Number: unix.SYS_GETPPID},
	{Name: "getuid", Number: unix.SYS_GETUID},
	{Name: "geteuid", Number: unix.SYS_GETEUID},
	{Name: "getgid", Number: unix.SYS_GETGID},
	{Name: "getegid", Number: unix.SYS_GETEGID},
	{Name: "gettid", Number: unix.SYS_GETTID},
	{Name: "sysinfo", Number: unix.SYS_SYSINFO},
	{Name: "mq_open", Number: unix.SYS_MQ_OPEN},
	{Name: "mq_unlink", Number: unix.SYS_MQ_UNLINK},
	{Name: "mq_timedsend", Number: unix.SYS_MQ_TIMEDSEND},
	{Name: "mq_timedreceive", Number: unix.SYS_MQ_TIMEDRECEIVE},
	{Name: "mq_notify", Number: unix.SYS_MQ_NOTIFY},
	{Name: "mq_getsetattr", Number: unix.SYS_MQ_GETSETATTR},
	{Name: "msgget", Number: unix.SYS_MSGGET},
	{Name: "msgctl", Number: unix.SYS_MSGCTL},
	{Name: "msgrcv", Number: unix.SYS_MSGRCV},
	{Name: "msgsnd", Number: unix.SYS_MSGSND},
	{Name: "semget", Number: unix.SYS_SEMGET},
	{Name: "semctl", Number: unix.SYS_SEMCTL},
	{Name: "semtimedop", Number: unix.SYS_SEMTIMEDOP},
	{Name: "semop", Number: unix.SYS_SEMOP},
	{Name: "shmget", Number: unix.SYS_SHMGET},
	{Name: "shmctl", Number: unix.SYS_SHMCTL},
	{Name: "shmat", Number: unix.SYS_SHMAT},
	{Name: "shmdt", Number: unix.SYS_SHMDT},
	{Name: "socket", Number: unix.SYS_SOCKET},
	{Name: "socketpair", Number: unix.SYS_SOCKETPAIR},
	{Name: "bind", Number: unix.SYS_BIND},
	{Name: "listen", Number: unix.SYS_LISTEN},
	{Name: "accept", Number: unix.SYS_ACCEPT},
	{Name: "connect", Number: unix.SYS_CONNECT},
	{Name: "getsockname", Number: unix.SYS_GETSOCKNAME},
	{Name: "getpeername", Number: unix.SYS_GETPEERNAME},
	{Name: "sendto", Number: unix.SYS_SENDTO},
	{Name: "recvfrom", Number: unix.SYS_RECVFROM},
	{Name: "setsockopt", Number: unix.SYS_SETSOCKOPT},
	{Name: "getsockopt", Number: unix.SYS_GETSOCKOPT},
	{Name: "shutdown", Number: unix.SYS_SHUTDOWN},
	{Name: "sendmsg", Number: unix.SYS_SENDMSG},
	{Name: "recvmsg", Number: unix.SYS_RECVMSG},
	{Name: "readahead", Number: unix.SYS_READAHEAD},
	{Name: "brk", Number: unix.SYS_BRK},
	{Name: "munmap", Number: unix.SYS_MUNMAP},
	{Name: "mremap", Number: unix.SYS_MREMAP},
	{Name: "add_key", Number: unix.SYS_ADD_KEY},
	{Name: "request_key", Number: unix.SYS_REQUEST_KEY},
	{Name: "keyctl", Number: unix.SYS_KEYCTL},
	{Name: "clone", Number: unix.SYS_CLONE},
	{Name: "execve", Number: unix.SYS_EXECVE},
	{Name: "mmap", Number: unix.SYS_MMAP},
	{Name: "fadvise64", Number: unix.SYS_FADVISE64},
	{Name: "swapon", Number: unix.SYS_SWAPON},
	{Name: "swapoff", Number: unix.SYS_SWAPOFF},
	{Name: "mprotect", Number: unix.SYS_MPROTECT},
	{Name: "msync", Number: unix.SYS_MSYNC},
	{Name: "mlock", Number: unix.SYS_MLOCK},
	{Name: "munlock", Number: unix.SYS_MUNLOCK},
	{Name: "mlockall", Number: unix.SYS_MLOCKALL},
	{Name: "munlockall", Number: unix.SYS_MUNLOCKALL},
	{Name: "mincore", Number: unix.SYS_MINCORE},
	{Name: "madvise", Number: unix.SYS_MADVISE},
	{Name: "remap_file_pages", Number: unix.SYS_REMAP_FILE_PAGES},
	{Name: "mbind", Number: unix.SYS_MBIND},
	{Name: "get_mempolicy", Number: unix.SYS_GET_MEMPOLICY},
	{Name: "set_mempolicy", Number: unix.SYS_SET_MEMPOLICY},
	{Name: "migrate_pages", Number: unix.SYS_MIGRATE_PAGES},
	{Name: "move_pages", Number: unix.SYS_MOVE_PAGES},
	{Name: "rt_tgsigqueueinfo", Number: unix.SYS_RT_TGSIGQUEUEINFO},
	{Name: "perf_event_open", Number: unix.SYS_PERF_EVENT_OPEN},
	{Name: "accept4", Number: unix.SYS_ACCEPT4},
	{Name: "recvmmsg", Number: unix.SYS_RECVMMSG},
	{Name: "arch_specific_syscall", Number: unix.SYS_ARCH_SPECIFIC_SYSCALL},
	{Name: "riscv_hwprobe", Number: unix.SYS_RISCV_HWPROBE},
	{Name: "riscv_flush_icache", Number: unix.SYS_RISCV_FLUSH_ICACHE},
	{Name: "wait4", Number: unix.SYS_WAIT4},
	{Name: "prlimit64", Number: unix.SYS_PRLIMIT64},
	{Name: "fanotify_init", Number: unix.SYS_FANOTIFY_INIT},
	{Name: "fanotify_mark", Number: unix.SYS_FANOTIFY_MARK},
	{Name: "name_to_handle_at", Number: unix.SYS_NAME_TO_HANDLE_AT},
	{Name: "open_by_handle_at", Number: unix.SYS_OPEN_BY_HANDLE_AT},
	{Name: "clock_adjtime", Number: unix.SYS_CLOCK_ADJTIME},
	{Name: "syncfs", Number: unix.SYS_SYNCFS},
	{Name: "setns", Number: unix.SYS_SETNS},
	{Name: "sendmmsg", Number: unix.SYS_SENDMMSG},
	{Name: "process_vm_readv", Number: unix.SYS_PROCESS_VM_READV},
	{Name: "process_vm_writev", Number: unix.SYS_PROCESS_VM_WRITEV},
	{Name: "kcmp", Number: unix.SYS_KCMP},
	{Name: "finit_module", Number: unix.SYS_FINIT_MODULE},
	{Name: "sched_setattr", Number: unix.SYS_SCHED_SETATTR},
	{Name: "sched_getattr", Number: unix.SYS_SCHED_GETATTR},
	{Name: "renameat2", Number: unix.SYS_RENAMEAT2},
	{Name: "seccomp", Number: unix.SYS_SECCOMP},
	{Name: "getrandom", Number: unix.SYS_GETRANDOM},
	{Name: "memfd_create", Number: unix.SYS_MEMFD_CREATE},
	{Name: "bpf", Number: unix.SYS_BPF},
	{Name: "execveat", Number: unix.SYS_EXECVEAT},
	{Name: "userfaultfd", Number: unix.SYS_USERFAULTFD},
	{Name: "membarrier", Number: unix.SYS_MEMBARRIER},
	{Name: "mlock2", Number: unix.SYS_MLOCK2},
	{Name: "copy_file_range", Number: unix.SYS_COPY_FILE_RANGE},
	{Name: "preadv2", Number: unix.SYS_PREADV2},
	{Name: "pwritev2", Number: unix.SYS_PWRITEV2},
	{Name: "pkey_mprotect", Number: unix.SYS_PKEY_MPROTECT},
	{Name: "pkey_alloc", Number: unix.SYS_PKEY_ALLOC},
	{Name: "pkey_free", Number: unix.SYS_PKEY_FREE},
	{Name: "statx", Number: unix.SYS_STATX},
	{Name: "io_pgetevents", Number: unix.SYS_IO_PGETEVENTS},
	{Name: "rseq", Number: unix.SYS_RSEQ},
	{Name: "kexec_file_load", Number: unix.SYS_KEXEC_FILE_LOAD},
	{Name: "pidfd_send_signal", Number: unix.SYS_PIDFD_SEND_SIGNAL},
	{Name: "io_uring_setup", Number: unix.SYS_IO_URING_SETUP},
	{Name: "io_uring_enter", Number: unix.SYS_IO_URING_ENTER},
	{Name: "io_uring_register", Number: unix.SYS_IO_URING_REGISTER},
	{Name: "open_tree", Number: unix.SYS_OPEN_TREE},
	{Name: "move_mount", Number: unix.SYS_MOVE_MOUNT},
	{Name: "fsopen", Number: unix.SYS_FSOPEN},
	{Name: "fsconfig", Number: unix.SYS_FSCONFIG},
	{Name: "fsmount", Number: unix.SYS_FSMOUNT},
	{Name: "fspick", Number: unix.SYS_FSPICK},
	{Name: "pidfd_open", Number: unix.SYS_PIDFD_OPEN},
	{Name: "clone3", Number: unix.SYS_CLONE3},
	{Name: "close_range", Number: unix.SYS_CLOSE_RANGE},
	{Name: "openat2", Number: unix.SYS_OPENAT2},
	{Name: "pidfd_getfd", Number: unix.SYS_PIDFD_GETFD},
	{Name: "faccessat2", Number: unix.SYS_FACCESSAT2},
	{Name: "process_madvise", Number: unix.SYS_PROCESS_MADVISE},
	{Name: "epoll_pwait2", Number: unix.SYS_EPOLL_PWAIT2},
	{Name: "mount_setattr", Number: unix.SYS_MOUNT_SETATTR},
	{Name: "quotactl_fd", Number: unix.SYS_QUOTACTL_FD},
	{Name: "landlock_create_ruleset", Number: unix.SYS_LANDLOCK_CREATE_RULESET},
	{Name: "landlock_add_rule", Number: unix.SYS_LANDLOCK_ADD_RULE},
	{Name: "landlock_restrict_self", Number: unix.SYS_LANDLOCK_RESTRICT_SELF},
	{Name: "memfd_secret", Number: unix.SYS_MEMFD_SECRET},
	{Name: "process_mrelease", Number: unix.SYS_PROCESS_MRELEASE},
	{Name: "futex_waitv", Number: unix.SYS_FUTEX_WAITV},
	{Name: "set_mempolicy_home_node", Number: unix.SYS_SET_MEMPOLICY_HOME_NODE},
	{Name: "cachestat", Number: unix.SYS_CACHESTAT},
	{Name: "fchmodat2", Number: unix.SYS_FCHMODAT2},
	{Name: "map_shadow_stack", Number: unix.SYS_MAP_SHADOW_STACK},
	{Name: "futex_wake", Number: unix.SYS_FUTEX_WAKE},
	{Name: "futex_wait", Number: unix.SYS_FUTEX_WAIT},
	{Name: "futex_requeue", Number: unix.SYS_FUTEX_REQUEUE},
	{Name: "statmount", Number: unix.SYS_STATMOUNT},
	{Name: "listmount", Number: unix.SYS_LISTMOUNT},
	{Name: "lsm_get_self_attr", Number: unix.SYS_LSM_GET_SELF_ATTR},
	{Name: "lsm_set_self_attr", Number: unix.SYS_LSM_SET_SELF_ATTR},
	{Name: "lsm_list_modules", Number: unix.SYS_LSM_LIST_MODULES},
	{Name: "mseal", Number: unix.SYS_MSEAL},
}
